package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/core/ports"
)

const (
	// RuntimeNodeID is the unique identifier for the runtime configuration node.
	RuntimeNodeID graft.ID = "adapter.config.runtime"
	// SettingsNodeID is the unique identifier for the settings store node.
	SettingsNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[*Runtime]{
		ID:        RuntimeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Runtime, error) {
			return LoadRuntime()
		},
	})

	graft.Register(graft.Node[ports.SettingsStore]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RuntimeNodeID},
		Run: func(ctx context.Context) (ports.SettingsStore, error) {
			rt, err := graft.Dep[*Runtime](ctx)
			if err != nil {
				return nil, err
			}
			return NewSettingsStore(rt.SettingsFile)
		},
	})
}
