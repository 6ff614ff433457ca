// Package app implements the application layer for cjs.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.trai.ch/cjs/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/cjs/internal/engine/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatcherFactory creates file watchers for watch mode.
type WatcherFactory interface {
	NewWatcher() (ports.Watcher, error)
}

// RunOptions holds the command line options shared by all commands.
type RunOptions struct {
	// ConfigPath is the project file to read. Empty means cjs.yaml found from the working directory.
	ConfigPath string
	// Flags override the values read from the project file.
	Flags domain.Options
	// Watch re-runs the main files whenever their sources change.
	Watch bool
}

// App represents the main application logic.
type App struct {
	hosts    ports.HostFactory
	loaders  *loader.Factory
	options  ports.OptionsLoader
	logger   ports.Logger
	watchers WatcherFactory

	out    io.Writer
	window time.Duration
	cwd    string
}

// New creates a new App instance.
func New(
	hosts ports.HostFactory,
	loaders *loader.Factory,
	options ports.OptionsLoader,
	logger ports.Logger,
	watchers WatcherFactory,
) *App {
	return &App{
		hosts:    hosts,
		loaders:  loaders,
		options:  options,
		logger:   logger,
		watchers: watchers,
		out:      os.Stdout,
		window:   watcher.DefaultDebounceWindow,
	}
}

// WithOutput sets the destination of script print output.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithDebounceWindow sets the quiet period watch mode waits for before re-running.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.window = d
	return a
}

// WithWorkingDir sets the directory relative paths and project file discovery start from.
// By default the process working directory is used.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = dir
	return a
}

// Options returns the bootstrap options from the project file with the flags applied.
// Relative paths given as flags are made absolute against the working directory.
func (a *App) Options(opts RunOptions) (domain.Options, error) {
	cwd, err := a.workingDir()
	if err != nil {
		return domain.Options{}, err
	}

	fromFile, err := a.options.Load(cwd, opts.ConfigPath)
	if err != nil {
		return domain.Options{}, err
	}

	flags := opts.Flags
	if flags.MainFile != "" {
		flags.MainFile = absolute(cwd, flags.MainFile)
	}
	flags.Paths = make([]string, len(opts.Flags.Paths))
	for i, p := range opts.Flags.Paths {
		flags.Paths[i] = absolute(cwd, p)
	}

	merged := fromFile.Merge(flags)
	if merged.Debug {
		a.enableDebug()
	}
	return merged, nil
}

// Run executes each file as the main module of its own loader.
// Files run concurrently; with no files the project file's main is run.
func (a *App) Run(ctx context.Context, files []string, opts RunOptions) error {
	resolved, err := a.Options(opts)
	if err != nil {
		return err
	}

	mains, err := a.mainFiles(files, resolved)
	if err != nil {
		return err
	}

	factory, shutdown := a.loaderFactory(resolved.Trace)
	defer shutdown(ctx)

	if opts.Watch {
		return a.watch(ctx, factory, mains, resolved)
	}
	return a.runAll(ctx, factory, mains, resolved)
}

func (a *App) runAll(ctx context.Context, factory *loader.Factory, files []string, opts domain.Options) error {
	out := &syncWriter{w: a.out}
	g, ctx := errgroup.WithContext(ctx)
	for _, file := range files {
		g.Go(func() error {
			return a.runFile(ctx, factory, out, file, opts)
		})
	}
	return g.Wait()
}

// runFile bootstraps a fresh host and loader on file and executes it.
func (a *App) runFile(ctx context.Context, factory *loader.Factory, out io.Writer, file string, opts domain.Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	host := a.hosts.NewHost(out)
	l := factory.New(host)
	host.ExposeInit(l.InitFunc(ctx))

	opts.MainFile = file
	if err := l.Init(ctx, opts); err != nil {
		return err
	}
	if _, err := l.RunMain(ctx); err != nil {
		return zerr.With(zerr.Wrap(err, "main module failed"), "main", file)
	}
	return nil
}

func (a *App) mainFiles(files []string, opts domain.Options) ([]string, error) {
	if len(files) == 0 {
		if opts.MainFile == "" {
			return nil, domain.ErrMissingMainFile
		}
		return []string{opts.MainFile}, nil
	}

	cwd, err := a.workingDir()
	if err != nil {
		return nil, err
	}
	mains := make([]string, len(files))
	for i, f := range files {
		mains[i] = absolute(cwd, f)
	}
	return mains, nil
}

// loaderFactory returns the loader factory to use, recording module loads
// through the logger when trace is set.
func (a *App) loaderFactory(trace bool) (*loader.Factory, func(context.Context)) {
	if !trace {
		return a.loaders, func(context.Context) {}
	}

	tp := telemetry.NewProvider(a.logger)
	tracer := telemetry.NewOTelTracerFromProvider(tp, telemetry.InstrumentationName)
	return a.loaders.WithTracer(tracer), func(ctx context.Context) {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}
}

func (a *App) enableDebug() {
	if l, ok := a.logger.(interface{ SetDebug(enable bool) }); ok {
		l.SetDebug(true)
	}
}

func (a *App) workingDir() (string, error) {
	if a.cwd != "" {
		return a.cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return cwd, nil
}

func absolute(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// syncWriter serializes writes from hosts running in parallel.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
