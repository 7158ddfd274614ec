package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gha-validator/internal/adapters/linear"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gha-validator/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gha-validator/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gha-validator/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gha-validator/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.installer"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			linear.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Installer, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(executor, reporter, telemetry, log), nil
		},
	})
}
