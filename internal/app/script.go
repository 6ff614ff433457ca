package app

import (
	"context"
	"io"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolve returns the stable name each id would load from when required by main,
// without executing any module. An empty main uses the project file's main.
func (a *App) Resolve(ctx context.Context, main string, ids []string, opts RunOptions) ([]string, error) {
	if main != "" {
		opts.Flags.MainFile = main
	}
	resolved, err := a.Options(opts)
	if err != nil {
		return nil, err
	}
	if resolved.MainFile == "" {
		return nil, domain.ErrMissingMainFile
	}

	l := a.loaders.New(a.hosts.NewHost(io.Discard))
	if err := l.Init(ctx, resolved); err != nil {
		return nil, err
	}

	names := make([]string, len(ids))
	for i, id := range ids {
		name, err := l.Resolve(ctx, id)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// Eval runs source in the global scope of a fresh host. The script bootstraps
// the loader itself through initRequire; options it leaves unset come from the
// project file and flags.
func (a *App) Eval(ctx context.Context, name, source string, opts RunOptions) error {
	resolved, err := a.Options(opts)
	if err != nil {
		return err
	}
	cwd, err := a.workingDir()
	if err != nil {
		return err
	}

	factory, shutdown := a.loaderFactory(resolved.Trace)
	defer shutdown(ctx)

	host := a.hosts.NewHost(a.out)
	l := factory.New(host)
	host.ExposeInit(func(fromScript domain.Options) error {
		if fromScript.MainFile != "" {
			fromScript.MainFile = absolute(cwd, fromScript.MainFile)
		}
		merged := resolved.Merge(fromScript)
		if merged.Debug {
			a.enableDebug()
		}
		return l.Init(ctx, merged)
	})

	if err := host.RunScript(name, source); err != nil {
		return zerr.With(zerr.Wrap(err, "script failed"), "script", name)
	}
	return nil
}
