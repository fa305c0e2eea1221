package recipeservice

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config"    //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/adapters/transport" //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the recipe service Graft node.
const NodeID graft.ID = "adapter.recipe_service"

func init() {
	graft.Register(graft.Node[ports.RecipeService]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, transport.NodeID},
		Run: func(ctx context.Context) (ports.RecipeService, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.BaseURL == "" {
				return nil, zerr.New("service.baseURL is not configured")
			}
			client, err := graft.Dep[*transport.Client](ctx)
			if err != nil {
				return nil, err
			}
			return New(client, cfg.BaseURL), nil
		},
	})
}
