// Package locator materializes search roots and file paths into module locations.
package locator

import (
	"go.trai.ch/cjs/internal/adapters/archive"
	"go.trai.ch/cjs/internal/adapters/fs"
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
)

var _ ports.Locator = (*Locator)(nil)

// Locator builds file and archive locations over a shared archive cache.
type Locator struct {
	fs       ports.FileSystem
	archives *archive.Cache
}

// New creates a Locator.
func New(fsys ports.FileSystem, archives *archive.Cache) *Locator {
	return &Locator{fs: fsys, archives: archives}
}

// File returns the file-backed location of path.
func (l *Locator) File(path string) domain.Location {
	return fs.NewFileLocation(l.fs, path)
}

// Root returns the location of a search root. Paths ending in an archive
// suffix are opened through the archive cache; a missing archive file yields
// nil, nil since it cannot hold any module.
func (l *Locator) Root(path string) (domain.Location, error) {
	if !domain.IsArchivePath(path) {
		return fs.NewRootLocation(l.fs, path), nil
	}

	canonical := l.fs.Canonicalize(path)
	if !l.fs.Exists(canonical) || l.fs.IsDir(canonical) {
		return nil, nil //nolint:nilnil // Missing archive roots are skipped
	}

	handle, err := l.archives.GetOrCreate(canonical)
	if err != nil {
		return nil, err
	}
	return archive.NewRootLocation(handle), nil
}
