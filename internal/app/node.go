package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/adapters/js"      //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/cjs/internal/core/ports"
	"go.trai.ch/cjs/internal/engine/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			js.NodeID,
			loader.NodeID,
			config.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	hosts, err := graft.Dep[ports.HostFactory](ctx)
	if err != nil {
		return nil, err
	}

	loaders, err := graft.Dep[*loader.Factory](ctx)
	if err != nil {
		return nil, err
	}

	options, err := graft.Dep[ports.OptionsLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[*watcher.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(hosts, loaders, options, log, watchers), nil
}
