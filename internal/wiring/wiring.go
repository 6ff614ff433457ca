// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cjs/internal/adapters/archive"
	_ "go.trai.ch/cjs/internal/adapters/config"
	_ "go.trai.ch/cjs/internal/adapters/fs"
	_ "go.trai.ch/cjs/internal/adapters/js"
	_ "go.trai.ch/cjs/internal/adapters/locator"
	_ "go.trai.ch/cjs/internal/adapters/logger"
	_ "go.trai.ch/cjs/internal/adapters/telemetry"
	_ "go.trai.ch/cjs/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cjs/internal/app"
	_ "go.trai.ch/cjs/internal/engine/loader"
	_ "go.trai.ch/cjs/internal/engine/resolver"
)
