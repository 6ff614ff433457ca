package ports

import (
	"io"

	"go.trai.ch/cjs/internal/core/domain"
)

//go:generate mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks

// Host is the script engine that compiles and executes module bodies.
type Host interface {
	// NewExports creates an empty exports object.
	NewExports() any
	// Compile turns wrapped module source into an invocable unit.
	// name is used in diagnostics and must keep line numbers intact.
	Compile(name, source string) (Unit, error)
	// Install publishes require, module and exports of the main module as globals.
	Install(main *domain.Surface, require Require)
	// ExposeInit publishes a one-shot initRequire global backed by init.
	ExposeInit(init func(domain.Options) error)
	// RunScript executes source in the global scope.
	RunScript(name, source string) error
}

// Unit is a compiled module body.
type Unit interface {
	// Invoke runs the body with the injected bindings.
	Invoke(exports any, module *domain.Surface, require Require) error
}

// Require is the require binding handed to one module.
type Require interface {
	// Require loads id relative to the owning module and returns its exports.
	Require(id string) (any, error)
	// Resolve returns the stable name id would load from.
	Resolve(id string) (string, error)
	// Main returns the main module's surface.
	Main() *domain.Surface
	// Paths returns the live list of user search roots.
	Paths() *domain.SearchPaths
}

// HostFactory creates isolated hosts.
type HostFactory interface {
	// NewHost creates a host whose print output goes to out.
	NewHost(out io.Writer) Host
}
