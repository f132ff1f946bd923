// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ninjify/internal/adapters/config"
	_ "go.trai.ch/ninjify/internal/adapters/graphio"
	_ "go.trai.ch/ninjify/internal/adapters/logger"
	_ "go.trai.ch/ninjify/internal/adapters/stamp"
	_ "go.trai.ch/ninjify/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/ninjify/internal/app"
	_ "go.trai.ch/ninjify/internal/engine/ninja"
)
