package streams

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/iamNilotpal/streamkit/pkg/errors"
	"go.uber.org/multierr"
)

// openPair opens the source for reading and creates or truncates the
// destination. On failure nothing is left open.
func (s *Service) openPair(op, sourcePath, destinationPath string) (src, dst *os.File, err error) {
	src, err = s.fs.Open(sourcePath)
	if err != nil {
		return nil, nil, errors.NewStreamError(errors.ErrorStorage, op, sourcePath, err)
	}

	dst, err = s.fs.Create(destinationPath, s.options.FileMode)
	if err != nil {
		err = errors.NewStreamError(errors.ErrorStorage, op, destinationPath, err)
		return nil, nil, multierr.Append(err, src.Close())
	}

	return src, dst, nil
}

// ByteCopy copies sourcePath to destinationPath one byte at a time, creating
// the destination or truncating it if it already exists. Both sides are
// buffered, so single byte calls do not translate into single byte syscalls.
// It returns the size of the destination once the copy has been flushed.
func (s *Service) ByteCopy(sourcePath, destinationPath string) (written int64, err error) {
	if err := s.validateSourceAndDestination(sourcePath, destinationPath); err != nil {
		return 0, err
	}

	src, dst, err := s.openPair(opByteCopy, sourcePath, destinationPath)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))
	defer multierr.AppendInvoke(&err, multierr.Close(dst))

	reader := bufio.NewReaderSize(src, int(s.options.BufferSize))
	writer := bufio.NewWriterSize(dst, int(s.options.BufferSize))

	for {
		b, rerr := reader.ReadByte()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return 0, errors.NewStreamError(errors.ErrorStorage, opByteCopy, sourcePath, rerr)
		}

		if werr := writer.WriteByte(b); werr != nil {
			return 0, errors.NewStreamError(errors.ErrorStorage, opByteCopy, destinationPath, werr)
		}
	}

	if err := writer.Flush(); err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, opByteCopy, destinationPath, err)
	}

	stat, err := dst.Stat()
	if err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, opByteCopy, destinationPath, err)
	}

	s.log.Debugw("copy completed", "operation", opByteCopy, "source", sourcePath, "destination", destinationPath, "bytes", stat.Size())
	return stat.Size(), nil
}

// BlockCopy reads the whole source into one buffer sized to the source's
// length and writes it to the destination in a single call.
// It returns the number of bytes read.
func (s *Service) BlockCopy(sourcePath, destinationPath string) (int64, error) {
	return s.blockCopy(opBlockCopy, sourcePath, destinationPath, false)
}

// BufferedBlockCopy behaves like BlockCopy, but the destination write goes
// through a bufio.Writer of the configured buffer size. The buffer is flushed
// before the destination is closed, so the result is identical.
func (s *Service) BufferedBlockCopy(sourcePath, destinationPath string) (int64, error) {
	return s.blockCopy(opBufferedBlockCopy, sourcePath, destinationPath, true)
}

func (s *Service) blockCopy(op, sourcePath, destinationPath string, buffered bool) (read int64, err error) {
	if err := s.validateSourceAndDestination(sourcePath, destinationPath); err != nil {
		return 0, err
	}

	src, dst, err := s.openPair(op, sourcePath, destinationPath)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))
	defer multierr.AppendInvoke(&err, multierr.Close(dst))

	stat, err := src.Stat()
	if err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, op, sourcePath, err)
	}

	// A file that shrank after the stat yields a short read, which is not an error.
	block := make([]byte, stat.Size())
	n, err := io.ReadFull(src, block)
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0, errors.NewStreamError(errors.ErrorStorage, op, sourcePath, err)
	}
	block = block[:n]

	var sink io.Writer = dst
	var writer *bufio.Writer
	if buffered {
		writer = bufio.NewWriterSize(dst, int(s.options.BufferSize))
		sink = writer
	}

	if _, err := sink.Write(block); err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, op, destinationPath, err)
	}

	if writer != nil {
		if err := writer.Flush(); err != nil {
			return 0, errors.NewStreamError(errors.ErrorStorage, op, destinationPath, err)
		}
	}

	s.log.Debugw("copy completed", "operation", op, "source", sourcePath, "destination", destinationPath, "bytes", n)
	return int64(n), nil
}

// LineCopy reads the source line by line and writes every line to the
// destination. Lines end at '\n'; a '\r' right before it is dropped too.
// A bare '\r' does not end a line.
// Lines are joined with the configured separator and the last line is
// written without one.
//
// A source that ends with a separator has a trailing empty line: it is
// counted and, being last, written without a separator. An empty source has
// no lines at all. So "a\nb" and "a\nb\n" hold 2 and 3 lines respectively,
// and "" holds 0.
func (s *Service) LineCopy(sourcePath, destinationPath string) (lines int, err error) {
	if err := s.validateSourceAndDestination(sourcePath, destinationPath); err != nil {
		return 0, err
	}

	src, dst, err := s.openPair(opLineCopy, sourcePath, destinationPath)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(src))
	defer multierr.AppendInvoke(&err, multierr.Close(dst))

	reader := bufio.NewReaderSize(src, int(s.options.BufferSize))
	writer := bufio.NewWriterSize(dst, int(s.options.BufferSize))
	separator := []byte(s.options.LineSeparator)

	for {
		line, rerr := reader.ReadBytes('\n')
		if rerr != nil && rerr != io.EOF {
			return 0, errors.NewStreamError(errors.ErrorStorage, opLineCopy, sourcePath, rerr)
		}

		if rerr == io.EOF && len(line) == 0 && lines == 0 {
			break
		}

		line = bytes.TrimSuffix(line, []byte{'\n'})
		line = bytes.TrimSuffix(line, []byte{'\r'})

		if lines > 0 {
			if _, werr := writer.Write(separator); werr != nil {
				return 0, errors.NewStreamError(errors.ErrorStorage, opLineCopy, destinationPath, werr)
			}
		}
		if _, werr := writer.Write(line); werr != nil {
			return 0, errors.NewStreamError(errors.ErrorStorage, opLineCopy, destinationPath, werr)
		}
		lines++

		if rerr == io.EOF {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return 0, errors.NewStreamError(errors.ErrorStorage, opLineCopy, destinationPath, err)
	}

	s.log.Debugw("copy completed", "operation", opLineCopy, "source", sourcePath, "destination", destinationPath, "lines", lines)
	return lines, nil
}
