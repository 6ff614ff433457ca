package ports

import "io"

//go:generate mockgen -source=archive.go -destination=mocks/mock_archive.go -package=mocks

// Archive is an open handle on an archive container.
type Archive interface {
	// Path returns the canonical path of the archive file.
	Path() string
	// HasEntry reports whether the archive holds a regular file at entry.
	HasEntry(entry string) bool
	// OpenEntry opens the file at entry.
	// Returns nil, nil if the entry is absent.
	OpenEntry(entry string) (io.ReadCloser, error)
	// Close releases the handle.
	Close() error
}

// ArchiveOpener opens archive handles.
type ArchiveOpener interface {
	// Open opens the archive at path.
	Open(path string) (Archive, error)
}
