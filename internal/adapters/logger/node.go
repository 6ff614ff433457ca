package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/core/ports"
)

const (
	// SlogNodeID is the unique identifier for the concrete logger Graft node.
	SlogNodeID graft.ID = "adapter.logger.slog"
	// NodeID is the unique identifier for the logger port Graft node.
	NodeID graft.ID = "adapter.logger"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        SlogNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SlogNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
