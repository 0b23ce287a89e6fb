package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/limbus/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/download"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/limbus/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			download.NodeID,
			fs.ExtractorNodeID,
			fs.FormatResolverNodeID,
			fs.CommitterNodeID,
			cas.NodeID,
			progrock.NodeID,
			logger.NodeID,
			config.RuntimeNodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			downloader, err := graft.Dep[ports.Downloader](ctx)
			if err != nil {
				return nil, err
			}

			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.FormatResolver](ctx)
			if err != nil {
				return nil, err
			}

			committer, err := graft.Dep[ports.Committer](ctx)
			if err != nil {
				return nil, err
			}

			fonts, err := graft.Dep[ports.FontCache](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			rt, err := graft.Dep[*config.Runtime](ctx)
			if err != nil {
				return nil, err
			}

			return New(downloader, extractor, resolver, committer, fonts, telemetry, log, rt.TempDir), nil
		},
	})
}
