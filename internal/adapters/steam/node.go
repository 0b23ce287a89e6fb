package steam

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/logger"
	"go.trai.ch/limbus/internal/core/ports"
)

const (
	// LocatorNodeID is the unique identifier for the game locator node.
	LocatorNodeID graft.ID = "adapter.steam.locator"
	// RuntimeNodeID is the unique identifier for the game runtime node.
	RuntimeNodeID graft.ID = "adapter.steam.runtime"
)

func init() {
	graft.Register(graft.Node[ports.GameLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GameLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.GameRuntime]{
		ID:        RuntimeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GameRuntime, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRuntime(log), nil
		},
	})
}
