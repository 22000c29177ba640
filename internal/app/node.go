package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ghwu/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/dockerhub" //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/github"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/adapters/workflow"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ghwu/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the objects the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workflow.NodeID,
			github.NodeID,
			dockerhub.NodeID,
			registry.NodeID,
			logger.NodeID,
			metrics.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.WorkflowStore](ctx)
	if err != nil {
		return nil, err
	}

	gh, err := graft.Dep[*github.Updater](ctx)
	if err != nil {
		return nil, err
	}

	hub, err := graft.Dep[*dockerhub.Updater](ctx)
	if err != nil {
		return nil, err
	}

	oci, err := graft.Dep[*registry.Updater](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	updaters := []ports.Updater{gh, hub, oci}
	return New(loader, store, updaters, log, recorder, tracer), nil
}
