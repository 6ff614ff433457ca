package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/cjs/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher factory Graft node.
const NodeID graft.ID = "adapter.watcher"

// Factory creates watchers on demand, so no watch resources are held unless watch mode is used.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory whose watchers report errors to logger.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// NewWatcher creates a new watcher.
func (f *Factory) NewWatcher() (ports.Watcher, error) {
	return NewWatcher(f.logger)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
