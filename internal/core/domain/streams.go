// Package domain defines the core types and options for the stream utilities.
package domain

import (
	"os"

	"go.uber.org/zap"
)

// StreamOptions defines the configuration parameters for the stream service.
type StreamOptions struct {
	// BufferSize controls the size of the write buffer used by buffered copies
	// and the read buffer used by byte and line copies. Must be a power of two
	// between 4KB and 16MB.
	//
	// Default: 64KB
	BufferSize uint32

	// LineSeparator is written between lines by LineCopy.
	// Only "\n" and "\r\n" are accepted.
	//
	// Default: "\n"
	LineSeparator string

	// FileMode is the permission used when a destination file is created.
	//
	// Default: 0644
	FileMode os.FileMode

	// CompressionOptions configures codecs returned by CompressStream
	// and DecompressStream.
	CompressionOptions *CompressionOptions

	// Logger receives one debug entry per completed operation.
	// Failures are returned, never logged.
	//
	// Default: no-op logger
	Logger *zap.Logger
}
