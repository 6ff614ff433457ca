package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/cjs/internal/adapters/fs"     //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/cjs/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/cjs/internal/core/ports"
)

// NodeID is the unique identifier for the options loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.OptionsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.AferoNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.OptionsLoader, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, log), nil
		},
	})
}
