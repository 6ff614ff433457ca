// Package resolver implements module location search.
package resolver

import (
	"context"
	"strconv"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Resolver = (*Resolver)(nil)

// candidate is a place an identifier can be resolved against.
type candidate interface {
	Resolve(id domain.ModuleID) domain.Location
}

// fileCandidate resolves absolute identifiers to file locations.
type fileCandidate struct {
	locator ports.Locator
}

func (c fileCandidate) Resolve(id domain.ModuleID) domain.Location {
	return c.locator.File(id.String())
}

// Resolver searches candidate roots for the first existing module location.
type Resolver struct {
	locator ports.Locator
	logger  ports.Logger
}

// New creates a Resolver.
func New(locator ports.Locator, logger ports.Logger) *Resolver {
	return &Resolver{locator: locator, logger: logger}
}

// Resolve returns the first existing location for id.
//
// Extensions form the outer loop and candidate roots the inner loop, so every
// root is tried with the first extension before any root is tried with the
// second. An identifier that already ends with an extension is not extended again.
func (r *Resolver) Resolve(
	ctx context.Context,
	cfg *domain.Config,
	id domain.ModuleID,
	from domain.Location,
) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candidates, err := r.candidates(cfg, id, from)
	if err != nil {
		return nil, err
	}

	tried := make([]string, 0, len(candidates)*len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		target := id.WithExtension(ext)
		for _, c := range candidates {
			loc := c.Resolve(target)
			if cfg.Debug {
				r.logger.Debug(domain.DebugPrefix + "Considering location " + loc.Name() + " for module " + id.String())
			}
			if loc.Exists() {
				return loc, nil
			}
			tried = append(tried, loc.Name())
		}
	}

	if cfg.Debug {
		r.logger.Debug(domain.DebugPrefix + "Failed to locate module: " + id.String())
	}
	return nil, notFound(id, tried)
}

// candidates returns the roots id is resolved against, in search order.
func (r *Resolver) candidates(cfg *domain.Config, id domain.ModuleID, from domain.Location) ([]candidate, error) {
	switch {
	case id.IsAbsolutePath():
		return []candidate{fileCandidate{locator: r.locator}}, nil
	case id.IsRelative() && from != nil:
		return []candidate{from}, nil
	}

	roots := cfg.Roots()
	candidates := make([]candidate, 0, len(roots))
	for _, path := range roots {
		root, err := r.locator.Root(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open search root"), "root", path)
		}
		if root == nil {
			if cfg.Debug {
				r.logger.Debug(domain.DebugPrefix + "Skipping missing root " + path)
			}
			continue
		}
		candidates = append(candidates, root)
	}
	return candidates, nil
}

func notFound(id domain.ModuleID, tried []string) error {
	err := zerr.Wrap(domain.ErrModuleNotFound, "failed to locate module "+strconv.Quote(id.String()))
	err = zerr.With(err, "id", id.String())
	return zerr.With(err, "candidates", tried)
}
