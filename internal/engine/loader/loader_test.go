package loader_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cjs/internal/adapters/archive"
	"go.trai.ch/cjs/internal/adapters/fs"
	"go.trai.ch/cjs/internal/adapters/locator"
	"go.trai.ch/cjs/internal/adapters/telemetry"
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/cjs/internal/core/ports/mocks"
	"go.trai.ch/cjs/internal/engine/loader"
	"go.trai.ch/cjs/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// body is a scripted module body standing in for compiled source.
type body func(exports map[string]any, module *domain.Surface, req ports.Require) error

type unitFunc body

func (f unitFunc) Invoke(exports any, module *domain.Surface, req ports.Require) error {
	return f(exports.(map[string]any), module, req)
}

type world struct {
	loader   *loader.Loader
	host     *mocks.MockHost
	mem      afero.Fs
	bodies   map[string]body
	runs     map[string]int
	compiled map[string]string
	global   ports.Require
}

// newWorld creates a loader over an in-memory file system holding files.
// Each file is executed by the body registered under its absolute path.
func newWorld(t *testing.T, files ...string) *world {
	t.Helper()
	ctrl := gomock.NewController(t)

	mem := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("// "+f+"\r\n"), 0o644))
	}

	fsys := fs.NewFileSystem(mem)
	cache := archive.NewCache(archive.NewOpener(mem), fsys)
	t.Cleanup(func() { _ = cache.Close() })
	loc := locator.New(fsys, cache)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	w := &world{
		host:     mocks.NewMockHost(ctrl),
		mem:      mem,
		bodies:   make(map[string]body),
		runs:     make(map[string]int),
		compiled: make(map[string]string),
	}
	w.host.EXPECT().NewExports().DoAndReturn(func() any {
		return map[string]any{}
	}).AnyTimes()
	w.host.EXPECT().Install(gomock.Any(), gomock.Any()).Do(func(_ *domain.Surface, req ports.Require) {
		w.global = req
	}).AnyTimes()
	w.host.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(func(name, source string) (ports.Unit, error) {
		w.compiled[name] = source
		return unitFunc(func(exports map[string]any, module *domain.Surface, req ports.Require) error {
			w.runs[name]++
			if b, ok := w.bodies[name]; ok {
				return b(exports, module, req)
			}
			return nil
		}), nil
	}).AnyTimes()

	w.loader = loader.New(w.host, resolver.New(loc, log), loc, fsys, log, telemetry.NewNoOpTracer())
	return w
}

func (w *world) init(t *testing.T, main string) {
	t.Helper()
	require.NoError(t, w.loader.Init(context.Background(), domain.Options{MainFile: main}))
}

func TestLoader_Init(t *testing.T) {
	w := newWorld(t, "/app/main.js")
	w.init(t, "/app/main.js")

	cfg := w.loader.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"/app"}, cfg.Paths.Values())
	assert.Equal(t, []string{"/app"}, cfg.FixedPaths)
	assert.Equal(t, []string{".js", ""}, cfg.Extensions)
	assert.False(t, cfg.Debug)

	require.NotNil(t, w.global)
	assert.Equal(t, "/app/main.js", w.global.Main().ID())
	assert.Same(t, cfg.Paths, w.global.Paths())
	assert.Equal(t, []string{"/app/main.js"}, w.loader.Cache().Names())
	assert.Zero(t, w.runs["/app/main.js"])
}

func TestLoader_InitOptions(t *testing.T) {
	w := newWorld(t, "/app/main.js")
	err := w.loader.Init(context.Background(), domain.Options{
		MainFile:   "/app/main.js",
		Extensions: []string{".cjs"},
		Paths:      []string{"/lib"},
		Debug:      true,
	})
	require.NoError(t, err)

	cfg := w.loader.Config()
	assert.Equal(t, []string{"/app", "/lib"}, cfg.Paths.Values())
	assert.Equal(t, []string{"/app"}, cfg.FixedPaths)
	assert.Equal(t, []string{".cjs"}, cfg.Extensions)
	assert.True(t, cfg.Debug)
}

func TestLoader_InitErrors(t *testing.T) {
	t.Run("missing main file", func(t *testing.T) {
		w := newWorld(t)
		err := w.loader.Init(context.Background(), domain.Options{})
		require.ErrorIs(t, err, domain.ErrMissingMainFile)
		assert.Nil(t, w.loader.Config())
	})

	t.Run("main file not found", func(t *testing.T) {
		w := newWorld(t)
		err := w.loader.Init(context.Background(), domain.Options{MainFile: "/app/nope.js"})
		require.ErrorIs(t, err, domain.ErrMainFileNotFound)
		assert.Nil(t, w.loader.Config())
	})

	t.Run("second init", func(t *testing.T) {
		w := newWorld(t, "/app/main.js", "/other/main.js")
		w.init(t, "/app/main.js")
		cfg := w.loader.Config()

		err := w.loader.Init(context.Background(), domain.Options{MainFile: "/other/main.js", Debug: true})
		require.ErrorIs(t, err, domain.ErrAlreadyInitialized)
		assert.Same(t, cfg, w.loader.Config())
		assert.False(t, cfg.Debug)
		assert.Equal(t, "/app/main.js", w.loader.Main().ID())
		assert.Equal(t, []string{"/app/main.js"}, w.loader.Cache().Names())
	})

	t.Run("init func", func(t *testing.T) {
		w := newWorld(t, "/app/main.js")
		initRequire := w.loader.InitFunc(context.Background())
		require.NoError(t, initRequire(domain.Options{MainFile: "/app/main.js"}))
		require.ErrorIs(t, initRequire(domain.Options{MainFile: "/app/main.js"}), domain.ErrAlreadyInitialized)
	})
}

func TestLoader_NotInitialized(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()

	_, err := w.loader.Require(ctx, "x")
	require.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = w.loader.Resolve(ctx, "x")
	require.ErrorIs(t, err, domain.ErrNotInitialized)

	_, err = w.loader.RunMain(ctx)
	require.ErrorIs(t, err, domain.ErrNotInitialized)

	assert.Nil(t, w.loader.Main())
}

func TestLoader_InvalidIdentifier(t *testing.T) {
	w := newWorld(t, "/app/main.js")
	w.init(t, "/app/main.js")

	_, err := w.loader.Require(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestLoader_ExecutesOnce(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/lib/util.js")
	w.bodies["/app/lib/util.js"] = func(exports map[string]any, _ *domain.Surface, _ ports.Require) error {
		exports["name"] = "util"
		return nil
	}
	w.init(t, "/app/main.js")
	ctx := context.Background()

	a, err := w.loader.Require(ctx, "./lib/util")
	require.NoError(t, err)
	b, err := w.loader.Require(ctx, "lib/util.js")
	require.NoError(t, err)
	c, err := w.loader.Require(ctx, "/app/lib/../lib/util.js")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "util"}, a)
	assert.True(t, sameMap(a, b))
	assert.True(t, sameMap(a, c))
	assert.Equal(t, 1, w.runs["/app/lib/util.js"])
}

func TestLoader_CyclicRequire(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/a.js", "/app/b.js")

	var seenFromB map[string]any
	w.bodies["/app/a.js"] = func(exports map[string]any, _ *domain.Surface, req ports.Require) error {
		exports["early"] = true
		if _, err := req.Require("./b"); err != nil {
			return err
		}
		exports["late"] = true
		return nil
	}
	w.bodies["/app/b.js"] = func(exports map[string]any, _ *domain.Surface, req ports.Require) error {
		a, err := req.Require("./a")
		if err != nil {
			return err
		}
		seenFromB = a.(map[string]any)
		_, hasLate := seenFromB["late"]
		exports["sawLate"] = hasLate
		return nil
	}
	w.init(t, "/app/main.js")

	a, err := w.loader.Require(context.Background(), "./a")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"early": true, "late": true}, a)
	assert.True(t, sameMap(a, seenFromB))
	b, err := w.loader.Require(context.Background(), "./b")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"sawLate": false}, b)
	assert.Equal(t, 1, w.runs["/app/a.js"])
	assert.Equal(t, 1, w.runs["/app/b.js"])
}

func TestLoader_RequireMainFromModule(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/dep.js")

	var seen any
	w.bodies["/app/main.js"] = func(exports map[string]any, _ *domain.Surface, req ports.Require) error {
		exports["before"] = 1
		if _, err := req.Require("./dep"); err != nil {
			return err
		}
		exports["after"] = 2
		return nil
	}
	w.bodies["/app/dep.js"] = func(_ map[string]any, _ *domain.Surface, req ports.Require) error {
		main, err := req.Require("./main")
		seen = main
		if m, ok := main.(map[string]any); ok {
			seen = len(m)
		}
		return err
	}
	w.init(t, "/app/main.js")

	exports, err := w.loader.RunMain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"before": 1, "after": 2}, exports)
	assert.Equal(t, 1, seen)
	assert.Equal(t, 1, w.runs["/app/main.js"])

	again, err := w.loader.RunMain(context.Background())
	require.NoError(t, err)
	assert.True(t, sameMap(exports, again))
	assert.Equal(t, 1, w.runs["/app/main.js"])
}

func TestLoader_ReassignedExports(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/fn.js")
	w.bodies["/app/fn.js"] = func(_ map[string]any, module *domain.Surface, _ ports.Require) error {
		assert.Equal(t, "/app/fn.js", module.ID())
		module.SetExports("replaced")
		return nil
	}
	w.init(t, "/app/main.js")

	got, err := w.loader.Require(context.Background(), "./fn")
	require.NoError(t, err)
	assert.Equal(t, "replaced", got)

	got, err = w.loader.Require(context.Background(), "fn")
	require.NoError(t, err)
	assert.Equal(t, "replaced", got)
}

func TestLoader_FailedModuleStaysCached(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/bad.js")
	boom := errors.New("boom")
	w.bodies["/app/bad.js"] = func(exports map[string]any, _ *domain.Surface, _ ports.Require) error {
		exports["partial"] = true
		return boom
	}
	w.init(t, "/app/main.js")
	ctx := context.Background()

	_, err := w.loader.Require(ctx, "./bad")
	require.Error(t, err)
	assert.Same(t, boom, err)

	got, err := w.loader.Require(ctx, "./bad")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"partial": true}, got)
	assert.Equal(t, 1, w.runs["/app/bad.js"])
}

func TestLoader_CompileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/app/main.js", nil, 0o644))
	require.NoError(t, afero.WriteFile(mem, "/app/broken.js", []byte("exports.x = ;"), 0o644))

	fsys := fs.NewFileSystem(mem)
	loc := locator.New(fsys, archive.NewCache(archive.NewOpener(mem), fsys))
	log := mocks.NewMockLogger(ctrl)

	host := mocks.NewMockHost(ctrl)
	host.EXPECT().NewExports().Return(map[string]any{}).Times(3)
	host.EXPECT().Install(gomock.Any(), gomock.Any())
	syntaxErr := errors.New("SyntaxError: Unexpected token ;")
	host.EXPECT().Compile("/app/broken.js", gomock.Any()).Return(nil, syntaxErr).Times(2)

	l := loader.New(host, resolver.New(loc, log), loc, fsys, log, telemetry.NewNoOpTracer())
	require.NoError(t, l.Init(context.Background(), domain.Options{MainFile: "/app/main.js"}))

	_, err := l.Require(context.Background(), "./broken")
	require.ErrorIs(t, err, domain.ErrCompileFailed)
	require.ErrorIs(t, err, syntaxErr)

	// A module that never compiled is not cached, so requiring it again fails again.
	_, err = l.Require(context.Background(), "./broken")
	require.ErrorIs(t, err, domain.ErrCompileFailed)
	require.ErrorIs(t, err, syntaxErr)
}

// unreadableFs fails every Open of path while still reporting it as present.
type unreadableFs struct {
	afero.Fs
	path string
}

func (f unreadableFs) Open(name string) (afero.File, error) {
	if name == f.path {
		return nil, errors.New("permission denied")
	}
	return f.Fs.Open(name)
}

func TestLoader_ReadFailureIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/app/main.js", nil, 0o644))
	require.NoError(t, afero.WriteFile(mem, "/app/locked.js", []byte("exports.x = 1;"), 0o644))

	fsys := fs.NewFileSystem(unreadableFs{Fs: mem, path: "/app/locked.js"})
	loc := locator.New(fsys, archive.NewCache(archive.NewOpener(mem), fsys))
	log := mocks.NewMockLogger(ctrl)

	host := mocks.NewMockHost(ctrl)
	host.EXPECT().NewExports().Return(map[string]any{}).Times(3)
	host.EXPECT().Install(gomock.Any(), gomock.Any())

	l := loader.New(host, resolver.New(loc, log), loc, fsys, log, telemetry.NewNoOpTracer())
	require.NoError(t, l.Init(context.Background(), domain.Options{MainFile: "/app/main.js"}))

	for range 2 {
		_, err := l.Require(context.Background(), "./locked")
		require.ErrorIs(t, err, domain.ErrReadFailure)
	}
}

func TestLoader_CompiledSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/app/main.js", []byte("\uFEFFvar a = 1;\r\nvar b = 2;\rexports.c = a + b;"), 0o644))

	fsys := fs.NewFileSystem(mem)
	loc := locator.New(fsys, archive.NewCache(archive.NewOpener(mem), fsys))
	log := mocks.NewMockLogger(ctrl)

	exports := map[string]any{}
	host := mocks.NewMockHost(ctrl)
	unit := mocks.NewMockUnit(ctrl)
	host.EXPECT().NewExports().Return(exports)
	host.EXPECT().Install(gomock.Any(), gomock.Any())
	host.EXPECT().Compile(
		"/app/main.js",
		"(function (exports, module, require) {var a = 1;\nvar b = 2;\nexports.c = a + b;\n})",
	).Return(unit, nil)
	unit.EXPECT().Invoke(exports, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, module *domain.Surface, req ports.Require) error {
			assert.Equal(t, "/app/main.js", module.ID())
			assert.Same(t, module, req.Main())
			return nil
		},
	)

	l := loader.New(host, resolver.New(loc, log), loc, fsys, log, telemetry.NewNoOpTracer())
	require.NoError(t, l.Init(context.Background(), domain.Options{MainFile: "/app/main.js"}))
	_, err := l.RunMain(context.Background())
	require.NoError(t, err)
}

func TestLoader_MutablePaths(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/extra/x.js", "/extra/y.js")
	w.init(t, "/app/main.js")
	ctx := context.Background()

	_, err := w.loader.Require(ctx, "x")
	require.ErrorIs(t, err, domain.ErrModuleNotFound)

	w.global.Paths().Push("/extra")
	x, err := w.loader.Require(ctx, "x")
	require.NoError(t, err)

	root, ok := w.global.Paths().Pop()
	require.True(t, ok)
	assert.Equal(t, "/extra", root)

	_, err = w.loader.Require(ctx, "y")
	require.ErrorIs(t, err, domain.ErrModuleNotFound)

	again, err := w.loader.Require(ctx, "/extra/x.js")
	require.NoError(t, err)
	assert.True(t, sameMap(x, again))
	assert.Equal(t, 1, w.runs["/extra/x.js"])
}

func TestLoader_Resolve(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/lib/a.js")
	w.init(t, "/app/main.js")

	name, err := w.loader.Resolve(context.Background(), "lib/a")
	require.NoError(t, err)
	assert.Equal(t, "/app/lib/a.js", name)
	assert.Empty(t, w.compiled)

	_, err = w.loader.Resolve(context.Background(), "lib/missing")
	require.ErrorIs(t, err, domain.ErrModuleNotFound)
}

func TestLoader_BindingResolvesRelativeToOwner(t *testing.T) {
	w := newWorld(t, "/app/main.js", "/app/sub/mod.js", "/app/sub/sibling.js", "/app/sibling.js")

	var resolved string
	w.bodies["/app/sub/mod.js"] = func(exports map[string]any, _ *domain.Surface, req ports.Require) error {
		var err error
		resolved, err = req.Resolve("./sibling")
		if err != nil {
			return err
		}
		sibling, err := req.Require("./sibling")
		exports["sibling"] = sibling
		return err
	}
	w.bodies["/app/sub/sibling.js"] = func(exports map[string]any, module *domain.Surface, _ ports.Require) error {
		exports["id"] = module.ID()
		return nil
	}
	w.init(t, "/app/main.js")

	got, err := w.loader.Require(context.Background(), "./sub/mod")
	require.NoError(t, err)
	assert.Equal(t, "/app/sub/sibling.js", resolved)
	assert.Equal(t, map[string]any{"id": "/app/sub/sibling.js"}, got.(map[string]any)["sibling"])
	assert.Zero(t, w.runs["/app/sibling.js"])
}

func TestLoader_ArchiveModules(t *testing.T) {
	w := newWorld(t, "/app/main.js")
	writeZip(t, w.mem, "/app/lib.zip", map[string]string{
		"pkg/a.js": "a",
		"pkg/b.js": "b",
	})

	w.bodies["/app/lib.zip!pkg/a.js"] = func(exports map[string]any, _ *domain.Surface, req ports.Require) error {
		b, err := req.Require("./b")
		exports["b"] = b
		return err
	}
	w.init(t, "/app/main.js")
	w.global.Paths().Push("/app/lib.zip")

	got, err := w.loader.Require(context.Background(), "pkg/a")
	require.NoError(t, err)
	assert.Contains(t, got.(map[string]any), "b")
	assert.Equal(t, 1, w.runs["/app/lib.zip!pkg/b.js"])
	assert.Equal(t, "(function (exports, module, require) {b\n})", w.compiled["/app/lib.zip!pkg/b.js"])
}

func sameMap(a, b any) bool {
	ma, ok := a.(map[string]any)
	if !ok {
		return false
	}
	mb, ok := b.(map[string]any)
	if !ok {
		return false
	}
	ma["__marker__"] = true
	defer delete(ma, "__marker__")
	_, shared := mb["__marker__"]
	return shared
}

func writeZip(t *testing.T, mem afero.Fs, path string, entries map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, afero.WriteFile(mem, path, buf.Bytes(), 0o644))
}
