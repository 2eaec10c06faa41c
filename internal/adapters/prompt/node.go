package prompt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docsync/internal/adapters/logger"
	"go.trai.ch/docsync/internal/core/ports"
)

// NodeID is the unique identifier for the headless dialog Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[*Headless]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Headless, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(DefaultPolicy(), log), nil
		},
	})
}
