package ports

import "io"

// Defines the interface for stream compression codecs.
// This allows us to swap compression algorithms without changing core logic.
type CompressionPort interface {
	// Wraps r in a decompressing reader.
	// Closing the returned reader releases codec resources but never closes r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Wraps w in a compressing writer.
	// Closing the returned writer flushes pending output but never closes w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// Name returns the codec name.
	Name() string
}
