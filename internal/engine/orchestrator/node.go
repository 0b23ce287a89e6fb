package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/catalog"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/events"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/metadata" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/steam"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/limbus/internal/engine/installer"
	"go.trai.ch/limbus/internal/engine/keylock"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			metadata.NodeID,
			catalog.FetcherNodeID,
			steam.LocatorNodeID,
			steam.RuntimeNodeID,
			fs.GameConfigNodeID,
			events.NodeID,
			installer.NodeID,
			keylock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			settings, err := graft.Dep[ports.SettingsStore](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			fetcher, err := graft.Dep[ports.CatalogFetcher](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.GameLocator](ctx)
			if err != nil {
				return nil, err
			}

			runtime, err := graft.Dep[ports.GameRuntime](ctx)
			if err != nil {
				return nil, err
			}

			gameConfig, err := graft.Dep[ports.GameConfig](ctx)
			if err != nil {
				return nil, err
			}

			bus, err := graft.Dep[*events.Bus](ctx)
			if err != nil {
				return nil, err
			}

			inst, err := graft.Dep[*installer.Installer](ctx)
			if err != nil {
				return nil, err
			}

			locks, err := graft.Dep[*keylock.Registry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(settings, store, fetcher, locator, runtime, gameConfig, bus, inst, locks, log), nil
		},
	})
}
