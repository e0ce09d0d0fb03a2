package streams

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"github.com/iamNilotpal/streamkit/pkg/errors"
)

// Validate checks caller supplied options. Zero values are allowed
// and replaced with defaults afterwards.
func Validate(opts *domain.StreamOptions) error {
	if opts.BufferSize != 0 {
		if err := validateBufferSize(opts.BufferSize); err != nil {
			return errors.NewValidationError("BufferSize", opts.BufferSize, err)
		}
	}

	switch opts.LineSeparator {
	case "", "\n", "\r\n":
	default:
		return errors.InvalidArgument(
			"LineSeparator", opts.LineSeparator, "line separator must be \"\\n\" or \"\\r\\n\", got %q", opts.LineSeparator,
		)
	}

	if opts.FileMode&^0777 != 0 {
		return errors.InvalidArgument("FileMode", opts.FileMode, "file mode must only hold permission bits, got %s", opts.FileMode)
	}

	if c := opts.CompressionOptions; c != nil && c.DecoderConcurrency < 0 {
		return errors.InvalidArgument(
			"DecoderConcurrency", c.DecoderConcurrency, "decoder concurrency must not be negative, got %d", c.DecoderConcurrency,
		)
	}

	return nil
}

func validateBufferSize(size uint32) error {
	if size < DefaultMinBufferSize {
		return fmt.Errorf("%w: buffer size must be at least 4KB (4096 bytes), got %d bytes", errors.ErrInvalidArgument, size)
	}

	if size > DefaultMaxBufferSize {
		return fmt.Errorf("%w: buffer size must not exceed 16MB (16777216 bytes), got %d bytes", errors.ErrInvalidArgument, size)
	}

	if size&(size-1) != 0 {
		return fmt.Errorf("%w: buffer size must be a power of 2, got %d bytes", errors.ErrInvalidArgument, size)
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// validateSource checks that the source path is usable and the file exists.
func (s *Service) validateSource(sourcePath string) error {
	if isBlank(sourcePath) {
		return errors.InvalidArgument("sourcePath", sourcePath, "source path must not be empty or whitespace")
	}

	ok, err := s.fs.Exists(sourcePath)
	if err != nil {
		return errors.NewStreamError(errors.ErrorStorage, "stat", sourcePath, err)
	}
	if !ok {
		return errors.NotFound("sourcePath", sourcePath, "source file %q does not exist", sourcePath)
	}

	return nil
}

// validateSourceAndDestination additionally requires a destination path. The
// destination does not need to exist, but it must not be the source itself,
// by path or through a symbolic or hard link, since opening it for writing
// would truncate the data about to be read.
func (s *Service) validateSourceAndDestination(sourcePath, destinationPath string) error {
	if isBlank(sourcePath) {
		return errors.InvalidArgument("sourcePath", sourcePath, "source path must not be empty or whitespace")
	}

	if isBlank(destinationPath) {
		return errors.InvalidArgument("destinationPath", destinationPath, "destination path must not be empty or whitespace")
	}

	if err := s.validateSource(sourcePath); err != nil {
		return err
	}

	same := samePath(sourcePath, destinationPath)
	if !same {
		var err error
		if same, err = s.fs.SameFile(sourcePath, destinationPath); err != nil {
			return errors.NewStreamError(errors.ErrorStorage, "stat", destinationPath, err)
		}
	}
	if same {
		return errors.InvalidArgument(
			"destinationPath", destinationPath, "destination %q is the same file as the source", destinationPath,
		)
	}

	return nil
}

func (s *Service) validateDestination(destinationPath string) error {
	if isBlank(destinationPath) {
		return errors.InvalidArgument("destinationPath", destinationPath, "destination path must not be empty or whitespace")
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
