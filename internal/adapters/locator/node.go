package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cjs/internal/adapters/archive"
	"go.trai.ch/cjs/internal/adapters/fs"
	"go.trai.ch/cjs/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, archive.CacheNodeID},
		Run: func(ctx context.Context) (ports.Locator, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			archives, err := graft.Dep[*archive.Cache](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, archives), nil
		},
	})
}
