package ports

import "os"

// Defines the file system operations the stream service relies on.
type FileSystemPort interface {
	// Opens a file for reading.
	Open(filePath string) (*os.File, error)

	// Creates or truncates a file for writing.
	Create(filePath string, permission os.FileMode) (*os.File, error)

	// Reports whether a file (not a directory) exists at filePath.
	Exists(filePath string) (bool, error)

	// Reports whether a and b refer to the same file, following links.
	SameFile(a, b string) (bool, error)
}
