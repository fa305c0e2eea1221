package upload

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/logger"        //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/adapters/recipeservice" //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/adapters/transport"     //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the image uploader Graft node.
const NodeID graft.ID = "adapter.uploader"

func init() {
	graft.Register(graft.Node[ports.ImageUploader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{recipeservice.NodeID, transport.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ImageUploader, error) {
			service, err := graft.Dep[ports.RecipeService](ctx)
			if err != nil {
				return nil, err
			}
			client, err := graft.Dep[*transport.Client](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(service, client, log), nil
		},
	})
}
