package domain

import "io"

// Location identifies where a module's source lives.
//
// Two locations that denote the same underlying source must report the same
// Name, however they were reached.
type Location interface {
	// Name is the stable name used as the module cache key.
	Name() string
	// Exists reports whether the location holds a readable module source.
	Exists() bool
	// Open returns a stream over the module source.
	Open() (io.ReadCloser, error)
	// Resolve computes the location of id relative to this location.
	Resolve(id ModuleID) Location
	// String returns a human readable form of the location.
	String() string
}
