package download

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/config"
	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "adapter.downloader"

func init() {
	graft.Register(graft.Node[ports.Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.RuntimeNodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.Downloader, error) {
			rt, err := graft.Dep[*config.Runtime](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewDownloader(&http.Client{Timeout: rt.DownloadTimeout}, rt.UserAgent, hasher), nil
		},
	})
}
