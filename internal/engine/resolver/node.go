package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/adapters/locator" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cjs/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cjs/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			locator.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Resolver, error) {
			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loc, log), nil
		},
	})
}
