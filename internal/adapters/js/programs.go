package js

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dop251/goja"
)

// ProgramCache holds compiled programs keyed by a hash of their name and source.
// It is safe for concurrent use; a program may run on any number of runtimes.
type ProgramCache struct {
	mu       sync.Mutex
	programs map[uint64]*goja.Program
}

// NewProgramCache creates an empty ProgramCache.
func NewProgramCache() *ProgramCache {
	return &ProgramCache{programs: make(map[uint64]*goja.Program)}
}

// Compile returns the cached program for name and source, compiling it on first use.
func (c *ProgramCache) Compile(name, source string) (*goja.Program, error) {
	key := programKey(name, source)

	c.mu.Lock()
	prg, ok := c.programs[key]
	c.mu.Unlock()
	if ok {
		return prg, nil
	}

	prg, err := goja.Compile(name, source, false)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.programs[key]; ok {
		return existing, nil
	}
	c.programs[key] = prg
	return prg, nil
}

// Len returns the number of cached programs.
func (c *ProgramCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.programs)
}

func programKey(name, source string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(source)
	return d.Sum64()
}
