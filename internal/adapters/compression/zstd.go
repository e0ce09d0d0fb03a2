package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// Compression level constants define the trade-off between compression ratio and speed.
// Higher levels provide better compression at the cost of increased CPU usage and time.
const (
	FastestLevel uint8 = 1 // Optimized for speed with minimal compression
	DefaultLevel uint8 = 2 // Balanced between speed and compression ratio
	BestLevel    uint8 = 4 // Maximum compression ratio, higher CPU usage
)

// zstdCodec creates streaming zstd encoders and decoders.
// Unlike the block-oriented EncodeAll/DecodeAll API, each stream gets its
// own encoder or decoder, which is released on Close.
type zstdCodec struct {
	level       zstd.EncoderLevel
	concurrency int
}

func newZstdCodec(opts *domain.CompressionOptions) *zstdCodec {
	level := DefaultLevel
	if opts.Level != 0 {
		level = uint8(opts.Level)
	}
	return &zstdCodec{level: zstd.EncoderLevel(level), concurrency: opts.DecoderConcurrency}
}

func (c *zstdCodec) Name() string { return domain.CompressionZstd.String() }

func (c *zstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	var opts []zstd.DOption
	if c.concurrency > 0 {
		opts = append(opts, zstd.WithDecoderConcurrency(c.concurrency))
	}

	decoder, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.IOReadCloser(), nil
}

func (c *zstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	encoder, err := zstd.NewWriter(w, zstd.WithEncoderLevel(c.level))
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}
	return encoder, nil
}
