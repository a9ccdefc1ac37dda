package fs

import (
	iofs "io/fs"
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]iofs.DirEntry, error)
	FileExists(path string) bool
	IsDir(path string) bool
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	MkdirAll(path string, perm iofs.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	RemoveAll(path string) error
}

// ReadOnlyFileSystem is the subset needed to copy a file tree out of an
// embedded or in-memory source.
type ReadOnlyFileSystem interface {
	ReadFile(path string) ([]byte, error)
	WalkDir(root string, fn iofs.WalkDirFunc) error
}
