package streams

import (
	"os"

	"github.com/iamNilotpal/streamkit/internal/adapters/compression"
	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"go.uber.org/zap"
)

const (
	DefaultBufferSize    = 65536    // 64KB
	DefaultMinBufferSize = 4096     // 4KB
	DefaultMaxBufferSize = 16777216 // 16MB

	DefaultLineSeparator             = "\n"
	DefaultFileMode      os.FileMode = 0644
)

func prepareDefaults(opts *domain.StreamOptions) *domain.StreamOptions {
	if opts.BufferSize == 0 {
		opts.BufferSize = DefaultBufferSize
	}

	if opts.LineSeparator == "" {
		opts.LineSeparator = DefaultLineSeparator
	}

	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return opts
}
