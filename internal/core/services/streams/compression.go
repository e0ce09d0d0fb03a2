package streams

import (
	"io"
	"os"

	"github.com/iamNilotpal/streamkit/internal/adapters/compression"
	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/internal/core/ports"
	"github.com/iamNilotpal/streamkit/pkg/errors"
	"go.uber.org/multierr"
)

// decompressedStream closes the decoder before the file it reads from.
type decompressedStream struct {
	io.ReadCloser
	file *os.File
}

func (d *decompressedStream) Close() error {
	return multierr.Combine(d.ReadCloser.Close(), d.file.Close())
}

// compressedStream flushes the encoder before closing the file it writes to.
type compressedStream struct {
	io.WriteCloser
	file *os.File
}

func (c *compressedStream) Close() error {
	return multierr.Combine(c.WriteCloser.Close(), c.file.Close())
}

func (s *Service) codec(method domain.CompressionMethod) (ports.CompressionPort, error) {
	if !method.Valid() {
		return nil, errors.InvalidArgument("method", method, "unsupported compression method: %s", method)
	}

	c, err := compression.New(method, s.options.CompressionOptions)
	if err != nil {
		return nil, errors.InvalidArgument("method", method, "%v", err)
	}
	return c, nil
}

// DecompressStream opens sourcePath and wraps it in the decoder for method.
// CompressionNone yields the raw file bytes. The caller owns the returned
// stream; closing it closes the decoder and the file.
//
// Decoders that read a header up front (gzip, zlib) fail here on malformed
// input, in which case the file is closed before returning.
func (s *Service) DecompressStream(sourcePath string, method domain.CompressionMethod) (io.ReadCloser, error) {
	if err := s.validateSource(sourcePath); err != nil {
		return nil, err
	}

	codec, err := s.codec(method)
	if err != nil {
		return nil, err
	}

	file, err := s.fs.Open(sourcePath)
	if err != nil {
		return nil, errors.NewStreamError(errors.ErrorStorage, opDecompressStream, sourcePath, err)
	}

	reader, err := codec.NewReader(file)
	if err != nil {
		err = errors.NewStreamError(errors.ErrorCompression, opDecompressStream, sourcePath, err)
		return nil, multierr.Append(err, file.Close())
	}

	s.log.Debugw("stream opened", "operation", opDecompressStream, "source", sourcePath, "method", codec.Name())
	return &decompressedStream{ReadCloser: reader, file: file}, nil
}

// CompressStream creates or truncates destinationPath and wraps it in the
// encoder for method, at the configured compression level. CompressionNone
// writes the bytes unchanged. Closing the returned stream flushes the encoder
// and closes the file; output is incomplete until then.
func (s *Service) CompressStream(destinationPath string, method domain.CompressionMethod) (io.WriteCloser, error) {
	if err := s.validateDestination(destinationPath); err != nil {
		return nil, err
	}

	codec, err := s.codec(method)
	if err != nil {
		return nil, err
	}

	file, err := s.fs.Create(destinationPath, s.options.FileMode)
	if err != nil {
		return nil, errors.NewStreamError(errors.ErrorStorage, opCompressStream, destinationPath, err)
	}

	writer, err := codec.NewWriter(file)
	if err != nil {
		err = errors.NewStreamError(errors.ErrorCompression, opCompressStream, destinationPath, err)
		return nil, multierr.Append(err, file.Close())
	}

	s.log.Debugw("stream created", "operation", opCompressStream, "destination", destinationPath, "method", codec.Name())
	return &compressedStream{WriteCloser: writer, file: file}, nil
}

// CompressFile compresses sourcePath into destinationPath with method and
// returns the number of uncompressed bytes read. The destination must not be
// the source, by path or through a link.
func (s *Service) CompressFile(sourcePath, destinationPath string, method domain.CompressionMethod) (n int64, err error) {
	if err := s.validateSourceAndDestination(sourcePath, destinationPath); err != nil {
		return 0, err
	}

	src, err := s.fs.Open(sourcePath)
	if err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, opCompressStream, sourcePath, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))

	wc, err := s.CompressStream(destinationPath, method)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(wc))

	if n, err = io.Copy(wc, src); err != nil {
		return 0, errors.NewStreamError(errors.ErrorCompression, opCompressStream, destinationPath, err)
	}
	return n, nil
}

// DecompressFile decodes sourcePath with method into destinationPath and
// returns the number of decoded bytes written. The destination must not be
// the source, by path or through a link.
func (s *Service) DecompressFile(sourcePath, destinationPath string, method domain.CompressionMethod) (n int64, err error) {
	if err := s.validateSourceAndDestination(sourcePath, destinationPath); err != nil {
		return 0, err
	}

	rc, err := s.DecompressStream(sourcePath, method)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(rc))

	dst, err := s.fs.Create(destinationPath, s.options.FileMode)
	if err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, opDecompressStream, destinationPath, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(dst))

	if n, err = io.Copy(dst, rc); err != nil {
		return 0, errors.NewStreamError(errors.ErrorCompression, opDecompressStream, sourcePath, err)
	}
	return n, nil
}
