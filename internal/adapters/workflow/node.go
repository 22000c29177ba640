package workflow

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ghwu/internal/adapters/logger"
	"go.trai.ch/ghwu/internal/core/ports"
)

// NodeID is the unique identifier for the workflow store Graft node.
const NodeID graft.ID = "adapter.workflow_store"

func init() {
	graft.Register(graft.Node[ports.WorkflowStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkflowStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(NewParser(log)), nil
		},
	})
}
