// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shipwright/internal/adapters/collect"
	_ "go.trai.ch/shipwright/internal/adapters/config"
	_ "go.trai.ch/shipwright/internal/adapters/freeze"
	_ "go.trai.ch/shipwright/internal/adapters/git"
	_ "go.trai.ch/shipwright/internal/adapters/logger"
	_ "go.trai.ch/shipwright/internal/adapters/provision"
	_ "go.trai.ch/shipwright/internal/adapters/shell"
	_ "go.trai.ch/shipwright/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/shipwright/internal/app"
	_ "go.trai.ch/shipwright/internal/engine/pipeline"
)
