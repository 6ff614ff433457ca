// Package fs implements the file system adapter and file-backed module locations.
package fs

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/cjs/internal/core/ports"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on top of an afero.Fs.
type FileSystem struct {
	fs afero.Fs
}

// NewFileSystem creates a FileSystem backed by fsys.
func NewFileSystem(fsys afero.Fs) *FileSystem {
	return &FileSystem{fs: fsys}
}

// NewOSFileSystem creates a FileSystem backed by the host file system.
func NewOSFileSystem() *FileSystem {
	return NewFileSystem(afero.NewOsFs())
}

// Afero returns the underlying afero.Fs.
func (f *FileSystem) Afero() afero.Fs {
	return f.fs
}

// Exists reports whether path names an existing entry.
func (f *FileSystem) Exists(path string) bool {
	ok, err := afero.Exists(f.fs, path)
	return err == nil && ok
}

// IsDir reports whether path names an existing directory.
func (f *FileSystem) IsDir(path string) bool {
	ok, err := afero.IsDir(f.fs, path)
	return err == nil && ok
}

// Open opens path for reading.
func (f *FileSystem) Open(path string) (io.ReadCloser, error) {
	return f.fs.Open(path)
}

// Canonicalize returns the absolute, cleaned form of path.
// Symbolic links are followed when the backing file system is the host's.
func (f *FileSystem) Canonicalize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	if _, ok := f.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}
	return abs
}

// Dir returns the parent directory of path.
func (f *FileSystem) Dir(path string) string {
	return filepath.Dir(path)
}
