// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nixcrate/internal/adapters/cas"
	_ "go.trai.ch/nixcrate/internal/adapters/config"
	_ "go.trai.ch/nixcrate/internal/adapters/fs"
	_ "go.trai.ch/nixcrate/internal/adapters/logger"
	_ "go.trai.ch/nixcrate/internal/adapters/manifest"
	_ "go.trai.ch/nixcrate/internal/adapters/nix"
	_ "go.trai.ch/nixcrate/internal/adapters/request"
	_ "go.trai.ch/nixcrate/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/nixcrate/internal/adapters/telemetry/tracing"
	// Register app and engine nodes.
	_ "go.trai.ch/nixcrate/internal/app"
	_ "go.trai.ch/nixcrate/internal/engine/optionality"
	_ "go.trai.ch/nixcrate/internal/engine/resolver"
)
