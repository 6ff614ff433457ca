package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/cjs/internal/adapters/fs"
	"go.trai.ch/cjs/internal/core/ports"
)

const (
	// OpenerNodeID is the unique identifier for the archive opener Graft node.
	OpenerNodeID graft.ID = "adapter.archive.opener"
	// CacheNodeID is the unique identifier for the archive handle cache Graft node.
	CacheNodeID graft.ID = "adapter.archive.cache"
)

func init() {
	graft.Register(graft.Node[ports.ArchiveOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.AferoNodeID},
		Run: func(ctx context.Context) (ports.ArchiveOpener, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(fsys), nil
		},
	})

	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{OpenerNodeID, fs.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			opener, err := graft.Dep[ports.ArchiveOpener](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(opener, fsys), nil
		},
	})
}
