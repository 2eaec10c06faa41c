package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docsync/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/docsync/internal/adapters/prompt"  //nolint:depguard // Wired in app layer
	"go.trai.ch/docsync/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"go.trai.ch/docsync/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/docsync/internal/core/ports"
)

const (
	// ManagerNodeID is the unique identifier for the Manager Graft node.
	ManagerNodeID graft.ID = "app.manager"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles what the CLI needs from the object graph.
type Components struct {
	Manager  *Manager
	Logger   ports.Logger
	Settings ports.SettingsStore
}

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			watcher.NodeID,
			settings.NodeID,
			prompt.NodeID,
		},
		Run: runManagerNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			ManagerNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	manager, err := graft.Dep[*Manager](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		Manager:  manager,
		Logger:   log,
		Settings: store,
	}, nil
}

func runManagerNode(ctx context.Context) (*Manager, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	watchers, err := graft.Dep[*watcher.Pair](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SettingsStore](ctx)
	if err != nil {
		return nil, err
	}

	dialogs, err := graft.Dep[*prompt.Headless](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		watchers.Files,
		watchers.Links,
		store,
		Dialogs{
			SaveSelection: dialogs,
			ReadOnly:      dialogs,
			Reload:        dialogs,
			Removed:       dialogs,
			SaveAs:        dialogs,
		},
		nil, // no diff surface in headless mode
		nil, // default closer
		log,
		Options{},
	), nil
}
