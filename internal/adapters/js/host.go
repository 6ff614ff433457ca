// Package js implements the script host on the goja JavaScript engine.
package js

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dop251/goja"
	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
)

var _ ports.Host = (*Host)(nil)

// Host runs module bodies on a single goja runtime.
// A Host is not safe for concurrent use.
type Host struct {
	rt       *goja.Runtime
	programs *ProgramCache
	out      io.Writer

	modules  map[*domain.Surface]*goja.Object
	paths    map[*domain.SearchPaths]*goja.Object
	initUsed bool
}

// NewHost creates a Host on a fresh runtime. print output goes to out.
func NewHost(programs *ProgramCache, out io.Writer) *Host {
	h := &Host{
		rt:       goja.New(),
		programs: programs,
		out:      out,
		modules:  make(map[*domain.Surface]*goja.Object),
		paths:    make(map[*domain.SearchPaths]*goja.Object),
	}
	_ = h.rt.Set("print", h.print)
	return h
}

// Runtime returns the underlying runtime.
func (h *Host) Runtime() *goja.Runtime {
	return h.rt
}

// NewExports creates an empty exports object.
func (h *Host) NewExports() any {
	return h.rt.NewObject()
}

// Compile compiles a wrapped module body into a unit.
func (h *Host) Compile(name, source string) (ports.Unit, error) {
	prg, err := h.programs.Compile(name, source)
	if err != nil {
		return nil, err
	}
	return &unit{host: h, program: prg}, nil
}

// Install publishes require, module and exports of the main module as globals.
func (h *Host) Install(main *domain.Surface, req ports.Require) {
	_ = h.rt.Set("require", h.requireFunc(req))
	_ = h.rt.Set("module", h.moduleObject(main))
	_ = h.rt.Set("exports", h.rt.ToValue(main.Exports()))
}

// ExposeInit publishes a one-shot initRequire global backed by init.
// Any call after the first throws, including after a failed first call.
func (h *Host) ExposeInit(init func(domain.Options) error) {
	_ = h.rt.Set("initRequire", func(call goja.FunctionCall) goja.Value {
		if h.initUsed {
			panic(h.rt.NewGoError(domain.ErrAlreadyInitialized))
		}
		h.initUsed = true

		opts, err := h.options(call.Argument(0))
		if err != nil {
			panic(h.rt.NewGoError(err))
		}
		if err := init(opts); err != nil {
			h.throw(err)
		}
		return goja.Undefined()
	})
}

// RunScript executes source in the global scope.
func (h *Host) RunScript(name, source string) error {
	_, err := h.rt.RunScript(name, source)
	return err
}

// unit is a compiled module wrapper bound to the runtime that compiled it.
type unit struct {
	host    *Host
	program *goja.Program
}

// Invoke evaluates the wrapper and calls it with the module bindings.
// Exceptions thrown by the body are returned as *goja.Exception.
func (u *unit) Invoke(exports any, module *domain.Surface, req ports.Require) error {
	h := u.host

	wrapper, err := h.rt.RunProgram(u.program)
	if err != nil {
		return err
	}
	fn, ok := goja.AssertFunction(wrapper)
	if !ok {
		return fmt.Errorf("module wrapper %q did not evaluate to a function", module.ID())
	}

	exportsVal := h.rt.ToValue(exports)
	_, err = fn(exportsVal, exportsVal, h.moduleObject(module), h.requireFunc(req))
	return err
}

// moduleObject returns the JS view of surface: id is read-only and exports
// reads and writes through to the module record.
func (h *Host) moduleObject(surface *domain.Surface) *goja.Object {
	if obj, ok := h.modules[surface]; ok {
		return obj
	}

	obj := h.rt.NewObject()
	_ = obj.DefineAccessorProperty("id",
		h.rt.ToValue(func(goja.FunctionCall) goja.Value {
			return h.rt.ToValue(surface.ID())
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = obj.DefineAccessorProperty("exports",
		h.rt.ToValue(func(goja.FunctionCall) goja.Value {
			return h.rt.ToValue(surface.Exports())
		}),
		h.rt.ToValue(func(call goja.FunctionCall) goja.Value {
			surface.SetExports(call.Argument(0))
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	h.modules[surface] = obj
	return obj
}

// requireFunc returns the JS require function for req, with resolve, main and paths.
func (h *Host) requireFunc(req ports.Require) *goja.Object {
	fn := h.rt.ToValue(func(call goja.FunctionCall) goja.Value {
		exports, err := req.Require(h.identifier(call.Argument(0)))
		if err != nil {
			h.throw(err)
		}
		return h.rt.ToValue(exports)
	}).ToObject(h.rt)

	_ = fn.Set("resolve", func(call goja.FunctionCall) goja.Value {
		name, err := req.Resolve(h.identifier(call.Argument(0)))
		if err != nil {
			h.throw(err)
		}
		return h.rt.ToValue(name)
	})

	noop := h.rt.ToValue(func(goja.FunctionCall) goja.Value { return goja.Undefined() })
	_ = fn.DefineAccessorProperty("main",
		h.rt.ToValue(func(goja.FunctionCall) goja.Value {
			if main := req.Main(); main != nil {
				return h.moduleObject(main)
			}
			return goja.Undefined()
		}),
		noop, goja.FLAG_FALSE, goja.FLAG_TRUE)
	_ = fn.DefineAccessorProperty("paths",
		h.rt.ToValue(func(goja.FunctionCall) goja.Value {
			return h.pathsArray(req.Paths())
		}),
		noop, goja.FLAG_FALSE, goja.FLAG_TRUE)

	return fn
}

// pathsArray returns a live JS array over paths.
func (h *Host) pathsArray(paths *domain.SearchPaths) *goja.Object {
	if arr, ok := h.paths[paths]; ok {
		return arr
	}
	arr := h.rt.NewDynamicArray(&searchPathsArray{rt: h.rt, paths: paths})
	h.paths[paths] = arr
	return arr
}

func (h *Host) identifier(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}

// throw raises err in the runtime. JS exceptions from nested module bodies
// are rethrown unchanged; Go errors become GoError objects.
func (h *Host) throw(err error) {
	var ex *goja.Exception
	if errors.As(err, &ex) {
		panic(ex)
	}
	panic(h.rt.NewGoError(err))
}

func (h *Host) print(call goja.FunctionCall) goja.Value {
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = arg.String()
	}
	_, _ = fmt.Fprintln(h.out, strings.Join(parts, " "))
	return goja.Undefined()
}

// options converts the initRequire argument into bootstrap options.
func (h *Host) options(v goja.Value) (domain.Options, error) {
	var opts domain.Options
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return opts, nil
	}
	obj := v.ToObject(h.rt)

	if main := obj.Get("mainFile"); main != nil && !goja.IsUndefined(main) && !goja.IsNull(main) {
		opts.MainFile = main.String()
	}
	if exts := obj.Get("extensions"); exts != nil && !goja.IsUndefined(exts) && !goja.IsNull(exts) {
		if err := h.rt.ExportTo(exts, &opts.Extensions); err != nil {
			return opts, fmt.Errorf("invalid extensions: %w", err)
		}
	}
	if debug := obj.Get("debug"); debug != nil {
		opts.Debug = debug.ToBoolean()
	}
	return opts, nil
}

// searchPathsArray adapts domain.SearchPaths to goja.DynamicArray.
type searchPathsArray struct {
	rt    *goja.Runtime
	paths *domain.SearchPaths
}

func (a *searchPathsArray) Len() int {
	return a.paths.Len()
}

func (a *searchPathsArray) Get(idx int) goja.Value {
	root, ok := a.paths.Get(idx)
	if !ok {
		return goja.Undefined()
	}
	return a.rt.ToValue(root)
}

func (a *searchPathsArray) Set(idx int, val goja.Value) bool {
	if idx > a.paths.Len() {
		a.paths.SetLen(idx)
	}
	root := ""
	if val != nil && !goja.IsUndefined(val) && !goja.IsNull(val) {
		root = val.String()
	}
	return a.paths.Set(idx, root)
}

func (a *searchPathsArray) SetLen(n int) bool {
	return a.paths.SetLen(n)
}
