// Package streams implements the file copying and stream utilities: byte,
// block, buffered and line copies, encoded text reading, compression stream
// wrapping and stream hashing.
//
// Every operation validates its inputs before touching the file system and
// releases the handles it opens on every exit path. The only exception is the
// stream returned by DecompressStream or CompressStream, which belongs to the
// caller. Validation failures wrap errors.ErrInvalidArgument or
// errors.ErrNotFound; I/O failures are returned as *errors.StreamError.
package streams

import (
	"io"

	"github.com/iamNilotpal/streamkit/internal/adapters/digest"
	"github.com/iamNilotpal/streamkit/internal/adapters/encoding"
	"github.com/iamNilotpal/streamkit/internal/adapters/fs"
	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/internal/core/ports"
	"github.com/iamNilotpal/streamkit/pkg/pool"
	"go.uber.org/zap"
)

// Operation names used in logs and in StreamError.Operation.
const (
	opByteCopy          = "byte copy"
	opBlockCopy         = "block copy"
	opBufferedBlockCopy = "buffered block copy"
	opLineCopy          = "line copy"
	opReadEncodedText   = "read encoded text"
	opDecompressStream  = "decompress stream"
	opCompressStream    = "compress stream"
	opCalculateHash     = "calculate hash"
)

// Service holds the immutable configuration shared by the stream operations.
// It is safe for concurrent use; every call owns the handles it opens.
type Service struct {
	options *domain.StreamOptions

	fs        ports.FileSystemPort
	digests   ports.DigestPort
	encodings ports.EncodingPort

	pool *pool.BufferPool
	log  *zap.SugaredLogger
}

// New creates a Service. A nil opts selects the defaults.
func New(opts *domain.StreamOptions) (*Service, error) {
	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
		copied := *opts
		opts = prepareDefaults(&copied)
	} else {
		opts = prepareDefaults(&domain.StreamOptions{})
	}

	return &Service{
		options:   opts,
		fs:        fs.NewLocalFileSystem(),
		digests:   digest.NewRegistry(),
		encodings: encoding.NewResolver(),
		pool:      pool.NewBufferPool(int(opts.BufferSize)),
		log:       opts.Logger.Sugar(),
	}, nil
}

// Options returns a copy of the effective options.
func (s *Service) Options() domain.StreamOptions {
	return *s.options
}

var defaultService = mustNew()

func mustNew() *Service {
	s, err := New(nil)
	if err != nil {
		panic(err)
	}
	return s
}

// ByteCopy copies sourcePath to destinationPath one byte at a time using the
// default options. See Service.ByteCopy.
func ByteCopy(sourcePath, destinationPath string) (int64, error) {
	return defaultService.ByteCopy(sourcePath, destinationPath)
}

// BlockCopy copies sourcePath to destinationPath through a single buffer.
// See Service.BlockCopy.
func BlockCopy(sourcePath, destinationPath string) (int64, error) {
	return defaultService.BlockCopy(sourcePath, destinationPath)
}

// BufferedBlockCopy is BlockCopy with a buffered destination writer.
// See Service.BufferedBlockCopy.
func BufferedBlockCopy(sourcePath, destinationPath string) (int64, error) {
	return defaultService.BufferedBlockCopy(sourcePath, destinationPath)
}

// LineCopy copies sourcePath to destinationPath line by line.
// See Service.LineCopy.
func LineCopy(sourcePath, destinationPath string) (int, error) {
	return defaultService.LineCopy(sourcePath, destinationPath)
}

// ReadEncodedText decodes sourcePath from encodingName into a UTF-8 string.
// See Service.ReadEncodedText.
func ReadEncodedText(sourcePath, encodingName string) (string, error) {
	return defaultService.ReadEncodedText(sourcePath, encodingName)
}

// DecompressStream opens sourcePath wrapped in the decoder for method.
// See Service.DecompressStream.
func DecompressStream(sourcePath string, method domain.CompressionMethod) (io.ReadCloser, error) {
	return defaultService.DecompressStream(sourcePath, method)
}

// CompressStream creates destinationPath wrapped in the encoder for method.
// See Service.CompressStream.
func CompressStream(destinationPath string, method domain.CompressionMethod) (io.WriteCloser, error) {
	return defaultService.CompressStream(destinationPath, method)
}

// CompressFile compresses sourcePath into destinationPath.
// See Service.CompressFile.
func CompressFile(sourcePath, destinationPath string, method domain.CompressionMethod) (int64, error) {
	return defaultService.CompressFile(sourcePath, destinationPath, method)
}

// DecompressFile decodes sourcePath into destinationPath.
// See Service.DecompressFile.
func DecompressFile(sourcePath, destinationPath string, method domain.CompressionMethod) (int64, error) {
	return defaultService.DecompressFile(sourcePath, destinationPath, method)
}

// CalculateHash digests the rest of r with the named algorithm.
// See Service.CalculateHash.
func CalculateHash(r io.Reader, algorithmName string) (string, error) {
	return defaultService.CalculateHash(r, algorithmName)
}

// HashFile digests the content of sourcePath. See Service.HashFile.
func HashFile(sourcePath, algorithmName string) (string, error) {
	return defaultService.HashFile(sourcePath, algorithmName)
}

// Algorithms lists the digest algorithms CalculateHash accepts.
func Algorithms() []string {
	return defaultService.digests.Algorithms()
}
