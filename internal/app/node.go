package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nixcrate/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/nix"                //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/request"            //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/adapters/telemetry/tracing"  //nolint:depguard // Wired in app layer
	"go.trai.ch/nixcrate/internal/core/ports"
	"go.trai.ch/nixcrate/internal/engine/optionality"
	"go.trai.ch/nixcrate/internal/engine/resolver"
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
			config.NodeID,
			request.NodeID,
			resolver.NodeID,
			optionality.NodeID,
			manifest.NodeID,
			nix.PrefetcherNodeID,
			cas.NodeID,
			fs.WriterNodeID,
			progrock.NodeID,
			tracing.NodeID,
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
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	requests, err := graft.Dep[ports.RequestLoader](ctx)
	if err != nil {
		return nil, err
	}
	featureResolver, err := graft.Dep[ports.FeatureResolver](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[*optionality.Engine](ctx)
	if err != nil {
		return nil, err
	}
	manifests, err := graft.Dep[ports.ManifestReader](ctx)
	if err != nil {
		return nil, err
	}
	prefetcher, err := graft.Dep[ports.Prefetcher](ctx)
	if err != nil {
		return nil, err
	}
	checksums, err := graft.Dep[ports.ChecksumCache](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.PlanWriter](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, requests, featureResolver, engine, manifests, prefetcher, checksums, writer, telemetry, tracer, log), nil
}
