package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xambuild/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xambuild/internal/adapters/console" //nolint:depguard // Wired in app layer
	"go.trai.ch/xambuild/internal/adapters/env"     //nolint:depguard // Wired in app layer
	"go.trai.ch/xambuild/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/xambuild/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/xambuild/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/xambuild/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			env.NodeID,
			fs.FinderNodeID,
			fs.RemoverNodeID,
			config.NodeID,
			shell.NodeID,
			console.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			console.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	environment, err := graft.Dep[ports.Environment](ctx)
	if err != nil {
		return nil, err
	}

	finder, err := graft.Dep[ports.ProjectFinder](ctx)
	if err != nil {
		return nil, err
	}

	remover, err := graft.Dep[ports.Remover](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(environment, finder, remover, settings, executor, reporter, log), nil
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
