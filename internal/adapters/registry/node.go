package registry

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the OCI registry updater Graft node.
const NodeID graft.ID = "adapter.updater.registry"

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Updater, error) {
			return New(), nil
		},
	})
}
