package loader

import "go.trai.ch/cjs/internal/core/ports"

// Factory creates loaders sharing resolution and I/O collaborators.
// Each Loader it returns owns a fresh module cache.
type Factory struct {
	resolver ports.Resolver
	locator  ports.Locator
	fs       ports.FileSystem
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewFactory creates a Factory.
func NewFactory(
	resolver ports.Resolver,
	locator ports.Locator,
	fsys ports.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
) *Factory {
	return &Factory{
		resolver: resolver,
		locator:  locator,
		fs:       fsys,
		logger:   logger,
		tracer:   tracer,
	}
}

// New creates a Loader executing modules on host.
func (f *Factory) New(host ports.Host) *Loader {
	return New(host, f.resolver, f.locator, f.fs, f.logger, f.tracer)
}

// WithTracer returns a copy of f that records spans with tracer.
func (f *Factory) WithTracer(tracer ports.Tracer) *Factory {
	c := *f
	c.tracer = tracer
	return &c
}
