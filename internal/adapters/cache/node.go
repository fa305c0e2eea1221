package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/logger"        //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/adapters/recipeservice" //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{recipeservice.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			source, err := graft.Dep[ports.RecipeService](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(source, log), nil
		},
	})
}
