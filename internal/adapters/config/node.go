package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/core/domain"
)

// NodeID is the unique identifier for the config Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.Config, error) {
			path := os.Getenv("PANTRY_CONFIG")
			if path == "" {
				path = DefaultFilename
			}
			return NewLoader().Load(path)
		},
	})
}
