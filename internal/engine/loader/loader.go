// Package loader implements module caching, execution and bootstrap.
package loader

import (
	"context"
	"errors"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader loads and executes modules for a single host runtime.
// It is not safe for concurrent use; create one Loader per goroutine.
type Loader struct {
	host     ports.Host
	resolver ports.Resolver
	locator  ports.Locator
	fs       ports.FileSystem
	logger   ports.Logger
	tracer   ports.Tracer

	cfg     *domain.Config
	cache   *ModuleCache
	main    *domain.Record
	mainRan bool
}

// New creates a Loader executing modules on host.
func New(
	host ports.Host,
	resolver ports.Resolver,
	locator ports.Locator,
	fsys ports.FileSystem,
	logger ports.Logger,
	tracer ports.Tracer,
) *Loader {
	return &Loader{
		host:     host,
		resolver: resolver,
		locator:  locator,
		fs:       fsys,
		logger:   logger,
		tracer:   tracer,
		cache:    NewModuleCache(),
	}
}

// Init bootstraps the loader on the main file named by opts.
//
// The main record is published and the global require, module and exports
// bindings are installed on the host. The main body is not executed; see RunMain.
// A second call fails with domain.ErrAlreadyInitialized and changes nothing.
func (l *Loader) Init(ctx context.Context, opts domain.Options) error {
	if l.cfg != nil {
		return domain.ErrAlreadyInitialized
	}
	if opts.MainFile == "" {
		return domain.ErrMissingMainFile
	}

	loc := l.locator.File(opts.MainFile)
	if !loc.Exists() {
		return zerr.With(zerr.Wrap(domain.ErrMainFileNotFound, "cannot bootstrap loader"), "path", opts.MainFile)
	}

	dir := l.fs.Dir(loc.Name())
	l.cfg = &domain.Config{
		Paths:      domain.NewSearchPaths(append([]string{dir}, opts.Paths...)...),
		FixedPaths: []string{dir},
		Extensions: opts.ExtensionsOrDefault(),
		Debug:      opts.Debug,
	}

	l.main = domain.NewRecord(loc, l.host.NewExports())
	l.cache.Put(l.main)
	l.host.Install(l.main.Surface(), l.binding(ctx, l.main))

	l.debug("Initialized with main file " + loc.Name())
	return nil
}

// InitFunc returns Init bound to ctx, for hosts exposing initRequire to scripts.
func (l *Loader) InitFunc(ctx context.Context) func(domain.Options) error {
	return func(opts domain.Options) error {
		return l.Init(ctx, opts)
	}
}

// RunMain executes the main module body and returns its exports.
// The body runs at most once; later calls return the current exports.
func (l *Loader) RunMain(ctx context.Context) (any, error) {
	if l.main == nil {
		return nil, domain.ErrNotInitialized
	}
	if l.mainRan {
		return l.main.Exports, nil
	}
	l.mainRan = true

	if err := l.execute(ctx, l.main); err != nil {
		return nil, err
	}
	return l.main.Exports, nil
}

// Require loads id on behalf of the main module and returns its exports.
func (l *Loader) Require(ctx context.Context, id string) (any, error) {
	if l.main == nil {
		return nil, domain.ErrNotInitialized
	}
	return l.require(ctx, id, l.main)
}

// Resolve returns the stable name id would load from, without loading it.
func (l *Loader) Resolve(ctx context.Context, id string) (string, error) {
	if l.main == nil {
		return "", domain.ErrNotInitialized
	}
	loc, err := l.resolve(ctx, id, l.main)
	if err != nil {
		return "", err
	}
	return loc.Name(), nil
}

// Config returns the configuration established by Init, or nil before Init.
func (l *Loader) Config() *domain.Config {
	return l.cfg
}

// Cache returns the module cache.
func (l *Loader) Cache() *ModuleCache {
	return l.cache
}

// Main returns the main module's surface, or nil before Init.
func (l *Loader) Main() *domain.Surface {
	if l.main == nil {
		return nil
	}
	return l.main.Surface()
}

func (l *Loader) require(ctx context.Context, id string, from *domain.Record) (any, error) {
	loc, err := l.resolve(ctx, id, from)
	if err != nil {
		return nil, err
	}
	return l.load(ctx, loc)
}

func (l *Loader) resolve(ctx context.Context, raw string, from *domain.Record) (domain.Location, error) {
	id, err := domain.NewModuleID(raw)
	if err != nil {
		return nil, err
	}

	var requester domain.Location
	if from != nil {
		requester = from.Location
	}
	return l.resolver.Resolve(ctx, l.cfg, id, requester)
}

// load returns the exports of the module at loc, executing it on first use.
func (l *Loader) load(ctx context.Context, loc domain.Location) (any, error) {
	if rec, ok := l.cache.Get(loc.Name()); ok {
		return rec.Exports, nil
	}

	rec := domain.NewRecord(loc, l.host.NewExports())
	if err := l.execute(ctx, rec); err != nil {
		return nil, err
	}
	return rec.Exports, nil
}

// execute reads, compiles and invokes the body of rec.
// The record is published only once its source compiles, and before the body
// runs, so a cyclic require observes the partially populated exports instead
// of executing the module again. Errors raised by the body are returned
// unchanged and leave the record cached.
func (l *Loader) execute(ctx context.Context, rec *domain.Record) error {
	name := rec.Location.Name()

	ctx, span := l.tracer.Start(ctx, "load "+name)
	defer span.End()
	span.SetAttribute("module.location", name)

	l.debug("Loading module " + name)

	source, err := readSource(rec.Location)
	if err != nil {
		span.RecordError(err)
		return err
	}

	unit, err := l.host.Compile(name, wrap(source))
	if err != nil {
		err = errors.Join(domain.ErrCompileFailed, zerr.With(err, "location", name))
		span.RecordError(err)
		return err
	}

	l.cache.Put(rec)
	if err := unit.Invoke(rec.Exports, rec.Surface(), l.binding(ctx, rec)); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (l *Loader) debug(msg string) {
	if l.cfg != nil && l.cfg.Debug {
		l.logger.Debug(domain.DebugPrefix + msg)
	}
}
