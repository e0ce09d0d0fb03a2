package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

const sample = "Grüße, naïve café — ½"

func decode(t *testing.T, r *Resolver, name string, raw []byte) string {
	t.Helper()

	enc, err := r.Lookup(name)
	require.NoError(t, err)

	out, err := io.ReadAll(NewDecoder(bytes.NewReader(raw), enc))
	require.NoError(t, err)
	return string(out)
}

func encode(t *testing.T, enc encoding.Encoding, text string) []byte {
	t.Helper()

	out, err := enc.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	return out
}

func TestRoundTrip(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name    string
		lookup  string
		encoder encoding.Encoding
		text    string
	}{
		{"utf-8", "UTF-8", unicode.UTF8, sample},
		{"utf-8 with bom", "utf-8", unicode.UTF8BOM, sample},
		{"utf-16 with bom", "utf-16", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), sample},
		{"utf-16be without bom", "UTF-16BE", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), sample},
		{"utf-32 with bom", "utf-32", utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), sample},
		{"latin-1", "ISO-8859-1", charmap.ISO8859_1, "Grüße, naïve café"},
		{"windows-1252", "windows-1252", charmap.Windows1252, sample},
		{"shift_jis", "Shift_JIS", nil, "こんにちは"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := tt.encoder
			if enc == nil {
				var err error
				enc, err = r.Lookup(tt.lookup)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.text, decode(t, r, tt.lookup, encode(t, enc, tt.text)))
		})
	}
}

func TestBOMOverridesNamedEncoding(t *testing.T) {
	r := NewResolver()

	raw := encode(t, unicode.UTF16(unicode.BigEndian, unicode.UseBOM), sample)
	assert.Equal(t, sample, decode(t, r, "iso-8859-1", raw))
}

func TestLookupRejectsUnknownNames(t *testing.T) {
	r := NewResolver()

	for _, name := range []string{"", "  ", "klingon-8", "utf-9", "replacement", "iso-2022-kr", "HZ-GB-2312", "csiso2022kr"} {
		_, err := r.Lookup(name)
		assert.Error(t, err, name)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	r := NewResolver()

	lower, err := r.Lookup("windows-1252")
	require.NoError(t, err)
	upper, err := r.Lookup("WINDOWS-1252")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}
