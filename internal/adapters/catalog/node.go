package catalog

import (
	"context"
	"net/http"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/config"
	"go.trai.ch/limbus/internal/core/ports"
)

const (
	// FetcherNodeID is the unique identifier for the catalog fetcher node.
	FetcherNodeID graft.ID = "adapter.catalog.fetcher"
	// ReleaseCheckerNodeID is the unique identifier for the release checker node.
	ReleaseCheckerNodeID graft.ID = "adapter.catalog.release_checker"
)

func init() {
	graft.Register(graft.Node[ports.CatalogFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.RuntimeNodeID},
		Run: func(ctx context.Context) (ports.CatalogFetcher, error) {
			rt, err := graft.Dep[*config.Runtime](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(&http.Client{Timeout: rt.CatalogTimeout}, rt.UserAgent), nil
		},
	})

	graft.Register(graft.Node[ports.ReleaseChecker]{
		ID:        ReleaseCheckerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.RuntimeNodeID},
		Run: func(ctx context.Context) (ports.ReleaseChecker, error) {
			rt, err := graft.Dep[*config.Runtime](ctx)
			if err != nil {
				return nil, err
			}
			client := &http.Client{Timeout: rt.CatalogTimeout}
			return NewReleaseChecker(client, rt.UserAgent, rt.ReleasesURL), nil
		},
	})
}
