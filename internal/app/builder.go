package app

import "go.trai.ch/upkeep/internal/core/ports"

// Components contains the initialized application components the entry
// point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
