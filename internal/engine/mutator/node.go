package mutator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/cache"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pantry/internal/adapters/recipeservice" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pantry/internal/adapters/upload"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the mutator Graft node.
const NodeID graft.ID = "engine.mutator"

func init() {
	graft.Register(graft.Node[*Mutator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID, recipeservice.NodeID, upload.NodeID},
		Run: func(ctx context.Context) (*Mutator, error) {
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			service, err := graft.Dep[ports.RecipeService](ctx)
			if err != nil {
				return nil, err
			}
			uploader, err := graft.Dep[ports.ImageUploader](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, service, uploader), nil
		},
	})
}
