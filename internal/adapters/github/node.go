package github

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the GitHub updater Graft node.
const NodeID graft.ID = "adapter.updater.github"

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Updater, error) {
			return New(), nil
		},
	})
}
