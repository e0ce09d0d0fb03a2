package fs

import (
	"errors"
	"os"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a file for reading.
func (lfs *LocalFileSystem) Open(filePath string) (*os.File, error) {
	return os.Open(filePath)
}

// Creates a file, truncating it if it already exists.
func (lfs *LocalFileSystem) Create(filePath string, permission os.FileMode) (*os.File, error) {
	return os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, permission)
}

// Checks if a file exists or not. Directories do not count as files.
func (lfs *LocalFileSystem) Exists(filePath string) (bool, error) {
	stat, err := os.Stat(filePath)
	if err == nil {
		return !stat.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Reports whether both paths name the same file once links are followed.
// A path that does not exist never matches.
func (lfs *LocalFileSystem) SameFile(a, b string) (bool, error) {
	statA, err := os.Stat(a)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	statB, err := os.Stat(b)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return os.SameFile(statA, statB), nil
}
