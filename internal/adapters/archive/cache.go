package archive

import (
	"errors"
	"sync"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache holds one archive handle per canonical archive path.
// Handles live until Close; they are never evicted.
type Cache struct {
	opener ports.ArchiveOpener
	fs     ports.FileSystem

	mu      sync.Mutex
	handles map[string]ports.Archive
}

// NewCache creates an empty Cache.
func NewCache(opener ports.ArchiveOpener, fsys ports.FileSystem) *Cache {
	return &Cache{
		opener:  opener,
		fs:      fsys,
		handles: make(map[string]ports.Archive),
	}
}

// GetOrCreate returns the handle for archivePath, opening it on first use.
func (c *Cache) GetOrCreate(archivePath string) (ports.Archive, error) {
	key := c.fs.Canonicalize(archivePath)

	c.mu.Lock()
	defer c.mu.Unlock()

	if h, ok := c.handles[key]; ok {
		return h, nil
	}

	h, err := c.opener.Open(key)
	if err != nil {
		return nil, errors.Join(domain.ErrArchiveOpenFailed, zerr.With(err, "archive", key))
	}
	c.handles[key] = h
	return h, nil
}

// Len returns the number of open handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles)
}

// Close closes every handle and empties the cache.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for key, h := range c.handles {
		if err := h.Close(); err != nil {
			errs = append(errs, zerr.With(err, "archive", key))
		}
		delete(c.handles, key)
	}
	return errors.Join(errs...)
}
