package app

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cjs/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/engine/loader"
	"go.trai.ch/zerr"
)

// watch runs files, then runs them again after every quiet window that saw a
// change below their directories or search paths. It returns when ctx ends.
// Failures of a single run are logged and do not stop watching.
func (a *App) watch(ctx context.Context, factory *loader.Factory, files []string, opts domain.Options) error {
	w, err := a.watchers.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, watchRoots(files, opts)...); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}

	changed := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.window, func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
	}()

	for {
		if err := a.runAll(ctx, factory, files, opts); err != nil && ctx.Err() == nil {
			a.logger.Error(err)
		}
		a.logger.Info("Watching for changes")

		select {
		case <-ctx.Done():
			return nil
		case paths := <-changed:
			a.logger.Info("Changed: " + strings.Join(paths, ", "))
		}
	}
}

// watchRoots returns the directories of files followed by the search paths, without duplicates.
func watchRoots(files []string, opts domain.Options) []string {
	roots := make([]string, 0, len(files)+len(opts.Paths))
	for _, f := range files {
		roots = append(roots, filepath.Dir(f))
	}
	roots = append(roots, opts.Paths...)

	slices.Sort(roots)
	return slices.Compact(roots)
}
