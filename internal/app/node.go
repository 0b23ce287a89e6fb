package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/catalog" //nolint:depguard // Wired in app layer
	"go.trai.ch/limbus/internal/adapters/events"  //nolint:depguard // Wired in app layer
	"go.trai.ch/limbus/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/limbus/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/limbus/internal/engine/orchestrator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			orchestrator.NodeID,
			catalog.ReleaseCheckerNodeID,
			fs.HasherNodeID,
			events.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}

			releases, err := graft.Dep[ports.ReleaseChecker](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			bus, err := graft.Dep[*events.Bus](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(orch, releases, hasher, bus, log), nil
		},
	})

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
