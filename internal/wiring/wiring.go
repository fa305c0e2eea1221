// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pantry/internal/adapters/auth"
	_ "go.trai.ch/pantry/internal/adapters/cache"
	_ "go.trai.ch/pantry/internal/adapters/config"
	_ "go.trai.ch/pantry/internal/adapters/logger"
	_ "go.trai.ch/pantry/internal/adapters/recipeservice"
	_ "go.trai.ch/pantry/internal/adapters/transport"
	_ "go.trai.ch/pantry/internal/adapters/upload"
	// Register app and engine nodes.
	_ "go.trai.ch/pantry/internal/app"
	_ "go.trai.ch/pantry/internal/engine/mutator"
)
