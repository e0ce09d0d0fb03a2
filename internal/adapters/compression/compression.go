// Package compression provides stream codecs backed by klauspost/compress.
// Each codec wraps a reader or writer without taking ownership of it.
package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/internal/core/ports"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression level bounds for the DEFLATE family (deflate, gzip, zlib).
const (
	DeflateFastestLevel = flate.BestSpeed
	DeflateBestLevel    = flate.BestCompression
)

// Returns CompressionOptions initialized with the codec defaults.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{}
}

// Checks that the level is acceptable for the method. Zero is always accepted
// and selects the codec's default level.
func Validate(method domain.CompressionMethod, input *domain.CompressionOptions) error {
	if !method.Valid() {
		return fmt.Errorf("unsupported compression method: %s", method)
	}
	if input == nil {
		return nil
	}
	if input.DecoderConcurrency < 0 {
		return fmt.Errorf("decoder concurrency must not be negative, got %d", input.DecoderConcurrency)
	}
	if input.Level == 0 {
		return nil
	}

	switch method {
	case domain.CompressionDeflate, domain.CompressionGzip, domain.CompressionZlib:
		if input.Level < DeflateFastestLevel || input.Level > DeflateBestLevel {
			return fmt.Errorf(
				"%s compression level must be between %d and %d, got %d",
				method, DeflateFastestLevel, DeflateBestLevel, input.Level,
			)
		}
	case domain.CompressionZstd:
		if input.Level < int(FastestLevel) || input.Level > int(BestLevel) {
			return fmt.Errorf(
				"zstd compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level,
			)
		}
	}

	return nil
}

// New returns the codec for method.
func New(method domain.CompressionMethod, opts *domain.CompressionOptions) (ports.CompressionPort, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := Validate(method, opts); err != nil {
		return nil, err
	}

	switch method {
	case domain.CompressionNone:
		return passthrough{}, nil
	case domain.CompressionDeflate:
		return &deflateCodec{level: levelOr(opts.Level, flate.DefaultCompression)}, nil
	case domain.CompressionGzip:
		return &gzipCodec{level: levelOr(opts.Level, gzip.DefaultCompression)}, nil
	case domain.CompressionZlib:
		return &zlibCodec{level: levelOr(opts.Level, zlib.DefaultCompression)}, nil
	default:
		return newZstdCodec(opts), nil
	}
}

func levelOr(level, fallback int) int {
	if level == 0 {
		return fallback
	}
	return level
}

type passthrough struct{}

func (passthrough) Name() string { return domain.CompressionNone.String() }

func (passthrough) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

func (passthrough) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type deflateCodec struct {
	level int
}

func (c *deflateCodec) Name() string { return domain.CompressionDeflate.String() }

func (c *deflateCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

func (c *deflateCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, c.level)
}

type gzipCodec struct {
	level int
}

func (c *gzipCodec) Name() string { return domain.CompressionGzip.String() }

// NewReader reads the gzip header eagerly, so a non-gzip source fails here.
func (c *gzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (c *gzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, c.level)
}

type zlibCodec struct {
	level int
}

func (c *zlibCodec) Name() string { return domain.CompressionZlib.String() }

func (c *zlibCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

func (c *zlibCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriterLevel(w, c.level)
}
