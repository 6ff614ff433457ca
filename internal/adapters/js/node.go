package js

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/core/ports"
)

// NodeID is the unique identifier for the script host factory Graft node.
const NodeID graft.ID = "adapter.js"

func init() {
	graft.Register(graft.Node[ports.HostFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostFactory, error) {
			return NewFactory(), nil
		},
	})
}
