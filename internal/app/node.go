package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/cmake"              //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/conan"              //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/descriptor"         //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/engine/lifecycle"
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
			descriptor.NodeID,
			conan.NodeID,
			cmake.NodeID,
			fs.ImporterNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			logger.NodeID,
			lifecycle.NodeID,
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
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, telemetry), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	descriptors, err := graft.Dep[ports.DescriptorLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.DependencyResolver](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[ports.BuildFileGenerator](ctx)
	if err != nil {
		return nil, err
	}

	importer, err := graft.Dep[ports.ArtifactImporter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*lifecycle.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, descriptors, resolver, generator, importer, hasher, store, log, runner), nil
}
