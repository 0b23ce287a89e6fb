package keylock

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the lock registry Graft node.
const NodeID graft.ID = "engine.keylock"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})
}
