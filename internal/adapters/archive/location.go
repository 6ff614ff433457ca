package archive

import (
	"io"
	"path"
	"strings"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
)

var _ domain.Location = (*Location)(nil)

// Location is a module location inside an archive.
// Its name is the archive path and the entry path joined by "!".
type Location struct {
	archive ports.Archive
	entry   string
}

// NewRootLocation creates the location of the archive's top-level directory.
func NewRootLocation(a ports.Archive) *Location {
	return &Location{archive: a}
}

// NewLocation creates the location of entry inside a.
func NewLocation(a ports.Archive, entry string) *Location {
	return &Location{archive: a, entry: cleanEntry(entry)}
}

// Name returns "<archive>!<entry>".
func (l *Location) Name() string {
	return l.archive.Path() + domain.ArchiveSeparator + l.entry
}

// Archive returns the shared archive handle.
func (l *Location) Archive() ports.Archive {
	return l.archive
}

// Entry returns the entry path inside the archive.
func (l *Location) Entry() string {
	return l.entry
}

// Exists reports whether the archive holds a file at the entry path.
func (l *Location) Exists() bool {
	return l.entry != "" && l.archive.HasEntry(l.entry)
}

// Open opens the entry for reading.
func (l *Location) Open() (io.ReadCloser, error) {
	rc, err := l.archive.OpenEntry(l.entry)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, &notFoundError{name: l.Name()}
	}
	return rc, nil
}

// Resolve returns the location of id inside the same archive, using
// forward-slash semantics. A root location resolves against the archive's
// top level; an entry resolves against its own directory.
func (l *Location) Resolve(id domain.ModuleID) domain.Location {
	child := strings.ReplaceAll(id.String(), `\`, "/")
	if id.IsAbsolutePath() {
		return NewLocation(l.archive, child)
	}

	base := ""
	if l.entry != "" {
		base = path.Dir(l.entry)
	}
	return NewLocation(l.archive, path.Join(base, child))
}

func (l *Location) String() string {
	return l.Name()
}

type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string {
	return "no such archive entry: " + e.name
}
