package ports

import "io"

// FileSystem is the raw file I/O collaborator used to back file locations.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path names an existing entry.
	Exists(path string) bool
	// IsDir reports whether path names an existing directory.
	IsDir(path string) bool
	// Open opens path for reading.
	Open(path string) (io.ReadCloser, error)
	// Canonicalize returns the absolute, cleaned form of path.
	// Two paths denoting the same file canonicalize identically.
	Canonicalize(path string) string
	// Dir returns the parent directory of path.
	Dir(path string) string
}
