package loader

import (
	"slices"

	"go.trai.ch/cjs/internal/core/domain"
)

// ModuleCache maps a location's stable name to its module record.
// A record is never evicted, including when its body failed.
type ModuleCache struct {
	records map[string]*domain.Record
}

// NewModuleCache creates an empty ModuleCache.
func NewModuleCache() *ModuleCache {
	return &ModuleCache{records: make(map[string]*domain.Record)}
}

// Get returns the record published under name.
func (c *ModuleCache) Get(name string) (*domain.Record, bool) {
	rec, ok := c.records[name]
	return rec, ok
}

// Put publishes rec under the stable name of its location.
func (c *ModuleCache) Put(rec *domain.Record) {
	c.records[rec.Location.Name()] = rec
}

// Len returns the number of published records.
func (c *ModuleCache) Len() int {
	return len(c.records)
}

// Names returns the stable names of all published records, sorted.
func (c *ModuleCache) Names() []string {
	names := make([]string, 0, len(c.records))
	for name := range c.records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
