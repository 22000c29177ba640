package dockerhub

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ghwu/internal/adapters/logger"
	"go.trai.ch/ghwu/internal/core/ports"
)

// NodeID is the unique identifier for the Docker Hub updater Graft node.
const NodeID graft.ID = "adapter.updater.dockerhub"

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Updater, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(WithLogger(log)), nil
		},
	})
}
