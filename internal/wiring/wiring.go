// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/upkeep/internal/adapters/config"
	_ "go.trai.ch/upkeep/internal/adapters/logger"
	_ "go.trai.ch/upkeep/internal/adapters/platform"
	_ "go.trai.ch/upkeep/internal/adapters/privilege"
	_ "go.trai.ch/upkeep/internal/adapters/report"
	_ "go.trai.ch/upkeep/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/upkeep/internal/app"
)
