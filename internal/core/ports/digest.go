package ports

import "hash"

// Resolves digest engines by algorithm name.
type DigestPort interface {
	// Returns a fresh hash.Hash for the named algorithm.
	// Returns an error if the name is not a supported algorithm.
	New(algorithm string) (hash.Hash, error)

	// Lists the canonical names of every supported algorithm.
	Algorithms() []string
}
