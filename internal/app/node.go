package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gha-validator/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gha-validator/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/gha-validator/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gha-validator/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/gha-validator/internal/adapters/snapshot"           //nolint:depguard // Wired in app layer
	"go.trai.ch/gha-validator/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/gha-validator/internal/core/ports"
	"go.trai.ch/gha-validator/internal/engine/installer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			snapshot.NodeID,
			fs.ValidatorNodeID,
			installer.NodeID,
			linear.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			linear.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.SnapshotWriter](ctx)
	if err != nil {
		return nil, err
	}

	validator, err := graft.Dep[ports.Validator](ctx)
	if err != nil {
		return nil, err
	}

	inst, err := graft.Dep[*installer.Installer](ctx)
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

	return New(loader, writer, validator, inst, reporter, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Reporter: reporter,
	}, nil
}
