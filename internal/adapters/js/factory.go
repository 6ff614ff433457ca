package js

import (
	"io"

	"go.trai.ch/cjs/internal/core/ports"
)

var _ ports.HostFactory = (*Factory)(nil)

// Factory creates hosts sharing one program cache.
type Factory struct {
	programs *ProgramCache
}

// NewFactory creates a Factory with an empty program cache.
func NewFactory() *Factory {
	return &Factory{programs: NewProgramCache()}
}

// NewHost creates a host on a fresh runtime.
func (f *Factory) NewHost(out io.Writer) ports.Host {
	return NewHost(f.programs, out)
}

// Programs returns the shared program cache.
func (f *Factory) Programs() *ProgramCache {
	return f.programs
}
