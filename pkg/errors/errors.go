package errors

import (
	"fmt"
	"time"
)

// ErrorCategory classifies the failures that can surface from stream
// operations after their inputs have been validated. It is useful for
// logging and for deciding how a caller reports a failure.
type ErrorCategory int

const (
	// ErrorStorage indicates errors related to underlying storage operations
	// such as file I/O, disk space, permissions, or filesystem issues.
	ErrorStorage ErrorCategory = iota + 1

	// ErrorCompression indicates errors while constructing or driving a
	// compression or decompression stream, such as a corrupt gzip header.
	ErrorCompression

	// ErrorEncoding indicates errors while decoding text from its source
	// encoding into UTF-8.
	ErrorEncoding

	// ErrorDigest indicates errors while feeding a digest engine.
	ErrorDigest
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorStorage:
		return "storage"
	case ErrorCompression:
		return "compression"
	case ErrorEncoding:
		return "encoding"
	case ErrorDigest:
		return "digest"
	default:
		return "unknown"
	}
}

// StreamError describes an I/O failure that happened while an operation was
// running. It always wraps the underlying cause.
type StreamError struct {
	Err       error
	Path      string
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewStreamError creates a StreamError stamped with the current time.
func NewStreamError(category ErrorCategory, operation, path string, err error) *StreamError {
	return &StreamError{
		Err:       err,
		Path:      path,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *StreamError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%v] %s: %v", e.Category, e.Operation, e.Err)
	}
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
