package domain

import "slices"

// Config is the loader configuration established at bootstrap.
// Only Paths may change afterwards.
type Config struct {
	// Paths are the user-mutable search roots.
	Paths *SearchPaths
	// FixedPaths are search roots that cannot be removed.
	FixedPaths []string
	// Extensions are tried in order when locating a module.
	Extensions []string
	// Debug enables resolution logging.
	Debug bool
}

// Roots returns FixedPaths followed by Paths with duplicates and empty entries
// removed, keeping the first occurrence of each root.
func (c *Config) Roots() []string {
	var user []string
	if c.Paths != nil {
		user = c.Paths.Values()
	}

	roots := make([]string, 0, len(c.FixedPaths)+len(user))
	seen := make(map[string]struct{}, cap(roots))
	for _, root := range slices.Concat(c.FixedPaths, user) {
		if _, ok := seen[root]; ok || root == "" {
			continue
		}
		seen[root] = struct{}{}
		roots = append(roots, root)
	}
	return roots
}

// SearchPaths is an ordered, mutable list of search roots.
// Changes are visible to every subsequent top-level resolution.
type SearchPaths struct {
	items []string
}

// NewSearchPaths creates a SearchPaths holding a copy of roots.
func NewSearchPaths(roots ...string) *SearchPaths {
	return &SearchPaths{items: slices.Clone(roots)}
}

// Values returns a snapshot of the roots.
func (p *SearchPaths) Values() []string {
	return slices.Clone(p.items)
}

// Len returns the number of roots.
func (p *SearchPaths) Len() int {
	return len(p.items)
}

// Get returns the root at index i.
func (p *SearchPaths) Get(i int) (string, bool) {
	if i < 0 || i >= len(p.items) {
		return "", false
	}
	return p.items[i], true
}

// Set replaces the root at index i. Setting index Len() appends.
func (p *SearchPaths) Set(i int, root string) bool {
	switch {
	case i < 0 || i > len(p.items):
		return false
	case i == len(p.items):
		p.items = append(p.items, root)
	default:
		p.items[i] = root
	}
	return true
}

// SetLen truncates the list, or pads it with empty roots.
func (p *SearchPaths) SetLen(n int) bool {
	if n < 0 {
		return false
	}
	if n <= len(p.items) {
		p.items = p.items[:n]
		return true
	}
	p.items = append(p.items, make([]string, n-len(p.items))...)
	return true
}

// Push appends roots to the end of the list.
func (p *SearchPaths) Push(roots ...string) {
	p.items = append(p.items, roots...)
}

// Pop removes and returns the last root.
func (p *SearchPaths) Pop() (string, bool) {
	if len(p.items) == 0 {
		return "", false
	}
	last := p.items[len(p.items)-1]
	p.items = p.items[:len(p.items)-1]
	return last, true
}
