package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/upkeep/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/upkeep/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/upkeep/internal/adapters/platform"  //nolint:depguard // Wired in app layer
	"go.trai.ch/upkeep/internal/adapters/privilege" //nolint:depguard // Wired in app layer
	"go.trai.ch/upkeep/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/upkeep/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/upkeep/internal/core/ports"
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
			privilege.NodeID,
			config.NodeID,
			platform.NodeID,
			shell.NodeID,
			logger.NodeID,
			report.NodeID,
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
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	guard, err := graft.Dep[ports.PrivilegeGuard](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.PolicyLoader](ctx)
	if err != nil {
		return nil, err
	}

	detector, err := graft.Dep[ports.PlatformDetector](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	newSink, err := graft.Dep[ports.SinkFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(guard, loader, detector, runner, log, newSink), nil
}
