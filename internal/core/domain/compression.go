package domain

import (
	"fmt"
	"strings"
)

// CompressionMethod selects the codec wrapped around a file stream.
type CompressionMethod uint8

const (
	// CompressionNone passes the raw file stream through unmodified.
	CompressionNone CompressionMethod = iota

	// CompressionDeflate is a raw DEFLATE stream (RFC 1951) with no framing.
	CompressionDeflate

	// CompressionGzip is a gzip member stream (RFC 1952).
	CompressionGzip

	// CompressionZlib is a DEFLATE stream with zlib framing (RFC 1950).
	CompressionZlib

	// CompressionZstd is a Zstandard frame stream.
	CompressionZstd
)

// String returns the lower-case name of the method.
func (m CompressionMethod) String() string {
	switch m {
	case CompressionNone:
		return "none"
	case CompressionDeflate:
		return "deflate"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// Valid reports whether m names a known method.
func (m CompressionMethod) Valid() bool {
	return m <= CompressionZstd
}

// ParseCompressionMethod resolves a method from its name. Matching is
// case-insensitive and the empty string means CompressionNone.
func ParseCompressionMethod(name string) (CompressionMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "deflate":
		return CompressionDeflate, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zlib":
		return CompressionZlib, nil
	case "zstd", "zstandard":
		return CompressionZstd, nil
	default:
		return CompressionNone, fmt.Errorf("unsupported compression method: %q", name)
	}
}

// CompressionOptions configures the codecs created by the compression adapter.
type CompressionOptions struct {
	// Level is the compression level handed to the encoder. Its range depends
	// on the method: 1-9 for deflate, gzip and zlib, 1-4 for zstd.
	// Zero selects the codec's default level. Decoders ignore it.
	Level int

	// DecoderConcurrency bounds the goroutines a zstd decoder may use.
	// Zero lets the decoder pick.
	DecoderConcurrency int
}
