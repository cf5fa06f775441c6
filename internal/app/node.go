package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glance/internal/adapters/browser"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/chart"     //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/csvfile"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/glance/internal/core/ports"
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
			csvfile.NodeID,
			chart.NodeID,
			metrics.NodeID,
			logger.NodeID,
			browser.NodeID,
			telemetry.TracerNodeID,
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

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	datasetLoader, err := graft.Dep[ports.DatasetLoader](ctx)
	if err != nil {
		return nil, err
	}

	charts, err := graft.Dep[ports.ChartRenderer](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.Browser](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, datasetLoader, charts, m, log, opener, tracer), nil
}
