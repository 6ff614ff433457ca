package loader

import (
	"context"

	"go.trai.ch/cjs/internal/core/domain"
	"go.trai.ch/cjs/internal/core/ports"
)

var _ ports.Require = (*binding)(nil)

// binding is the require function handed to one module.
// Relative identifiers resolve against the owning record's location.
type binding struct {
	ctx    context.Context //nolint:containedctx // module bodies call back synchronously
	loader *Loader
	record *domain.Record
}

func (l *Loader) binding(ctx context.Context, rec *domain.Record) *binding {
	return &binding{ctx: ctx, loader: l, record: rec}
}

func (b *binding) Require(id string) (any, error) {
	return b.loader.require(b.ctx, id, b.record)
}

func (b *binding) Resolve(id string) (string, error) {
	loc, err := b.loader.resolve(b.ctx, id, b.record)
	if err != nil {
		return "", err
	}
	return loc.Name(), nil
}

func (b *binding) Main() *domain.Surface {
	return b.loader.Main()
}

func (b *binding) Paths() *domain.SearchPaths {
	return b.loader.cfg.Paths
}
