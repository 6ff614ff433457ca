package ports

import (
	"context"

	"go.trai.ch/cjs/internal/core/domain"
)

//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks

// Locator materializes paths into module locations.
type Locator interface {
	// File returns a file-backed location for path.
	File(path string) domain.Location
	// Root returns the location of a search root, archive-backed when the path
	// names an archive container. It returns nil, nil when the root cannot hold
	// any module.
	Root(path string) (domain.Location, error)
}

// Resolver finds the location of a module.
type Resolver interface {
	// Resolve returns the first existing location for id. from is the location
	// of the requesting module and is nil for the main module.
	Resolve(ctx context.Context, cfg *domain.Config, id domain.ModuleID, from domain.Location) (domain.Location, error)
}
