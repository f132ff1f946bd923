package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ninjify/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ninjify/internal/adapters/graphio" //nolint:depguard // Wired in app layer
	"go.trai.ch/ninjify/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/ninjify/internal/adapters/stamp"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ninjify/internal/core/ports"
	"go.trai.ch/ninjify/internal/engine/ninja"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the adapters behind it, for
// callers that need direct access to individual pieces.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	GraphLoader  ports.GraphLoader
	Stamper      ports.Stamper
	Generator    *ninja.Generator
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			graphio.NodeID,
			ninja.NodeID,
			stamp.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			graphLoader, err := graft.Dep[ports.GraphLoader](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[*ninja.Generator](ctx)
			if err != nil {
				return nil, err
			}

			stamper, err := graft.Dep[ports.Stamper](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(configLoader, graphLoader, generator, stamper, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			graphio.NodeID,
			stamp.NodeID,
			ninja.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	graphLoader, err := graft.Dep[ports.GraphLoader](ctx)
	if err != nil {
		return nil, err
	}

	stamper, err := graft.Dep[ports.Stamper](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[*ninja.Generator](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: configLoader,
		GraphLoader:  graphLoader,
		Stamper:      stamper,
		Generator:    generator,
	}, nil
}
