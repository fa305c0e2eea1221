package transport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pantry/internal/adapters/auth"   //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/adapters/config" //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/adapters/logger" //nolint:depguard // Wired in adapter node
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
)

// NodeID is the unique identifier for the transport client Graft node.
const NodeID graft.ID = "adapter.transport"

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, auth.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			tokens, err := graft.Dep[ports.TokenSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, tokens, log), nil
		},
	})
}
