package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/download"
	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/adapters/logger"
	"go.trai.ch/limbus/internal/core/ports"
)

// NodeID is the unique identifier for the font cache Graft node.
const NodeID graft.ID = "adapter.font_cache"

func init() {
	graft.Register(graft.Node[ports.FontCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{download.NodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.FontCache, error) {
			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFontCache(downloader, hasher, log), nil
		},
	})
}
