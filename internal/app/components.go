package app

import (
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
)

// Components aggregates the resolved application graph for consumers that
// need more than the App facade, e.g. the CLI's debug/verbose plumbing.
type Components struct {
	App    *App
	Config *domain.Config
	Logger ports.Logger
	Store  ports.CacheStore
}
