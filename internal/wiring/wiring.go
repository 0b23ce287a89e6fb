// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/limbus/internal/adapters/cas"
	_ "go.trai.ch/limbus/internal/adapters/catalog"
	_ "go.trai.ch/limbus/internal/adapters/config"
	_ "go.trai.ch/limbus/internal/adapters/download"
	_ "go.trai.ch/limbus/internal/adapters/events"
	_ "go.trai.ch/limbus/internal/adapters/fs"
	_ "go.trai.ch/limbus/internal/adapters/logger"
	_ "go.trai.ch/limbus/internal/adapters/metadata"
	_ "go.trai.ch/limbus/internal/adapters/steam"
	_ "go.trai.ch/limbus/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/limbus/internal/app"
	_ "go.trai.ch/limbus/internal/engine/installer"
	_ "go.trai.ch/limbus/internal/engine/keylock"
	_ "go.trai.ch/limbus/internal/engine/orchestrator"
)
