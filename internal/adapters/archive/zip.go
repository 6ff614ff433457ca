// Package archive implements archive-backed module roots.
package archive

import (
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Archive       = (*Zip)(nil)
	_ ports.ArchiveOpener = (*Opener)(nil)
)

// Zip is an open zip or jar archive.
type Zip struct {
	path    string
	file    afero.File
	entries map[string]*zip.File
}

// OpenZip opens the archive at archivePath on fsys and indexes its entries.
func OpenZip(fsys afero.Fs, archivePath string) (*Zip, error) {
	f, err := fsys.Open(archivePath)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r, err := zip.NewReader(f, info.Size())
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "invalid archive"), "archive", archivePath)
	}

	entries := make(map[string]*zip.File, len(r.File))
	for _, zf := range r.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		entries[cleanEntry(zf.Name)] = zf
	}

	return &Zip{path: archivePath, file: f, entries: entries}, nil
}

// Path returns the archive path.
func (z *Zip) Path() string {
	return z.path
}

// HasEntry reports whether the archive holds a regular file at entry.
func (z *Zip) HasEntry(entry string) bool {
	_, ok := z.entries[cleanEntry(entry)]
	return ok
}

// OpenEntry opens the file at entry. Returns nil, nil if the entry is absent.
func (z *Zip) OpenEntry(entry string) (io.ReadCloser, error) {
	zf, ok := z.entries[cleanEntry(entry)]
	if !ok {
		return nil, nil //nolint:nilnil // Absence is not an error
	}
	return zf.Open()
}

// Close releases the underlying file.
func (z *Zip) Close() error {
	return z.file.Close()
}

// cleanEntry normalizes an entry path to the slash-separated, unrooted form
// stored in the archive directory.
func cleanEntry(entry string) string {
	return strings.TrimPrefix(path.Clean("/"+entry), "/")
}

// Opener opens zip archives from an afero.Fs.
type Opener struct {
	fs afero.Fs
}

// NewOpener creates an Opener reading from fsys.
func NewOpener(fsys afero.Fs) *Opener {
	return &Opener{fs: fsys}
}

// Open opens the archive at archivePath.
func (o *Opener) Open(archivePath string) (ports.Archive, error) {
	return OpenZip(o.fs, archivePath)
}
