package ports

import "golang.org/x/text/encoding"

// Resolves text encodings by name.
type EncodingPort interface {
	// Returns the encoding registered under name.
	// Returns an error if the name is unknown or the encoding is unsupported.
	Lookup(name string) (encoding.Encoding, error)
}
