package fs

import (
	"io"
	"path/filepath"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
)

var _ domain.Location = (*Location)(nil)

// Location is a module location backed by a loose file or a root directory.
// Its name is the canonical path.
type Location struct {
	fs   ports.FileSystem
	path string
	root bool
}

// NewFileLocation creates the location of the module file at path.
func NewFileLocation(fsys ports.FileSystem, path string) *Location {
	return &Location{fs: fsys, path: fsys.Canonicalize(path)}
}

// NewRootLocation creates the location of a search root directory.
// Identifiers resolve against the directory itself rather than its parent.
func NewRootLocation(fsys ports.FileSystem, dir string) *Location {
	return &Location{fs: fsys, path: fsys.Canonicalize(dir), root: true}
}

// Name returns the canonical path.
func (l *Location) Name() string {
	return l.path
}

// Path returns the canonical path.
func (l *Location) Path() string {
	return l.path
}

// Exists reports whether the location is an existing regular file.
func (l *Location) Exists() bool {
	return l.fs.Exists(l.path) && !l.fs.IsDir(l.path)
}

// Open opens the file for reading.
func (l *Location) Open() (io.ReadCloser, error) {
	return l.fs.Open(l.path)
}

// Resolve returns the location of id relative to the containing directory.
func (l *Location) Resolve(id domain.ModuleID) domain.Location {
	if id.IsAbsolutePath() {
		return NewFileLocation(l.fs, id.String())
	}
	base := l.path
	if !l.root {
		base = l.fs.Dir(l.path)
	}
	return NewFileLocation(l.fs, filepath.Join(base, filepath.FromSlash(id.String())))
}

func (l *Location) String() string {
	return l.path
}
