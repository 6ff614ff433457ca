package domain

// Record is the module cache entry for one location.
// Exports is a mutable slot: a module body may replace it entirely.
type Record struct {
	Location Location
	Exports  any
	surface  *Surface
}

// NewRecord creates a record for loc with the given initial exports.
func NewRecord(loc Location, exports any) *Record {
	return &Record{Location: loc, Exports: exports}
}

// Surface returns the exposed view of the record handed to module code.
// The same Surface is returned on every call.
func (r *Record) Surface() *Surface {
	if r.surface == nil {
		r.surface = &Surface{record: r}
	}
	return r.surface
}

// Surface is the module object seen by executing module code.
// ID is read-only; Exports reads and writes through to the owning record.
type Surface struct {
	record *Record
}

// ID returns the stable name of the module's location.
func (s *Surface) ID() string {
	return s.record.Location.Name()
}

// Exports returns the current exports value of the module.
func (s *Surface) Exports() any {
	return s.record.Exports
}

// SetExports replaces the exports value of the module.
func (s *Surface) SetExports(v any) {
	s.record.Exports = v
}
