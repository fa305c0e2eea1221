package auth

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/config" //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the token source Graft node.
const NodeID graft.ID = "adapter.auth"

func init() {
	graft.Register(graft.Node[ports.TokenSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.TokenSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnvTokenSource(cfg.TokenEnv), nil
		},
	})
}
