// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gha-validator/internal/adapters/config"
	_ "go.trai.ch/gha-validator/internal/adapters/fs"
	_ "go.trai.ch/gha-validator/internal/adapters/linear"
	_ "go.trai.ch/gha-validator/internal/adapters/logger"
	_ "go.trai.ch/gha-validator/internal/adapters/shell"
	_ "go.trai.ch/gha-validator/internal/adapters/snapshot"
	_ "go.trai.ch/gha-validator/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/gha-validator/internal/app"
	_ "go.trai.ch/gha-validator/internal/engine/installer"
)
