package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/logger"
	"go.trai.ch/limbus/internal/core/ports"
)

const (
	WalkerNodeID         graft.ID = "adapter.fs.walker"
	HasherNodeID         graft.ID = "adapter.fs.hasher"
	ExtractorNodeID      graft.ID = "adapter.fs.extractor"
	FormatResolverNodeID graft.ID = "adapter.fs.format_resolver"
	CommitterNodeID      graft.ID = "adapter.fs.committer"
	GameConfigNodeID     graft.ID = "adapter.fs.game_config"
)

func init() {
	// Walker Node (Concrete implementation needed by Hasher)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Extractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Extractor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(log), nil
		},
	})

	graft.Register(graft.Node[ports.FormatResolver]{
		ID:        FormatResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FormatResolver, error) {
			return NewFormatResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Committer]{
		ID:        CommitterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Committer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCommitter(log), nil
		},
	})

	graft.Register(graft.Node[ports.GameConfig]{
		ID:        GameConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.GameConfig, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGameConfig(log), nil
		},
	})
}
