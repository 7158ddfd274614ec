package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gha-validator/internal/core/ports"
)

// NodeID is the unique identifier for the snapshot writer Graft node.
const NodeID graft.ID = "adapter.snapshot"

func init() {
	graft.Register(graft.Node[ports.SnapshotWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SnapshotWriter, error) {
			return NewWriter(), nil
		},
	})
}
