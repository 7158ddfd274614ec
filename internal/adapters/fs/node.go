package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gha-validator/internal/core/ports"
)

// ValidatorNodeID is the unique identifier for the file validator Graft node.
const ValidatorNodeID graft.ID = "adapter.fs.validator"

func init() {
	graft.Register(graft.Node[ports.Validator]{
		ID:        ValidatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Validator, error) {
			return NewValidator(), nil
		},
	})
}
