package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cjs/internal/adapters/locator"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cjs/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cjs/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/cjs/internal/engine/resolver"
)

// NodeID is the unique identifier for the loader factory Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			locator.NodeID,
			fs.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			res, err := graft.Dep[ports.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := graft.Dep[ports.Locator](ctx)
			if err != nil {
				return nil, err
			}

			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(res, loc, fsys, log, tracer), nil
		},
	})
}
