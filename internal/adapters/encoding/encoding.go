// Package encoding resolves text encodings by name using golang.org/x/text.
//
// Names are looked up in three places, in order: a small table of Unicode
// names whose byte order is fixed here, the IANA charset registry, and the
// WHATWG label table used by browsers.
package encoding

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// Unicode names resolve to little-endian byte order when no BOM is present,
// which is what Windows tooling produces for "utf-16" and "utf-32".
var (
	utf32LE      = utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)
	utf32LENoBOM = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	utf32BENoBOM = utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
)

var unicodeNames = map[string]encoding.Encoding{
	"utf8":     unicode.UTF8,
	"utf-8":    unicode.UTF8,
	"utf-16":   unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":    unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"unicode":  unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-32":   utf32LE,
	"utf32":    utf32LE,
	"utf-32le": utf32LENoBOM,
	"utf-32be": utf32BENoBOM,
}

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Lookup returns the encoding registered under name. Matching is case-insensitive.
func (r *Resolver) Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("encoding name is empty")
	}

	if enc, ok := unicodeNames[key]; ok {
		return enc, nil
	}

	// A nil encoding with a nil error means the charset is registered
	// but x/text has no implementation for it.
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && usable(enc) {
		return enc, nil
	}

	if enc, err := htmlindex.Get(key); err == nil && usable(enc) {
		return enc, nil
	}

	return nil, fmt.Errorf("unsupported encoding: %q", name)
}

// usable rejects missing encodings and the WHATWG replacement encoding, which
// browsers map unsafe labels such as "iso-2022-kr" to and which decodes any
// input to a single U+FFFD.
func usable(enc encoding.Encoding) bool {
	return enc != nil && enc != encoding.Replacement
}

// NewDecoder wraps r so that it yields UTF-8. A leading UTF-8 or UTF-16
// byte-order mark takes precedence over enc and is stripped. UTF-32 input is
// left to its own decoder, since its little-endian BOM starts like UTF-16's.
func NewDecoder(r io.Reader, enc encoding.Encoding) io.Reader {
	if isUTF32(enc) {
		return transform.NewReader(r, enc.NewDecoder())
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder()))
}

func isUTF32(enc encoding.Encoding) bool {
	return enc == utf32LE || enc == utf32LENoBOM || enc == utf32BENoBOM
}
