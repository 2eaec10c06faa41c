package settings

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/docsync/internal/adapters/logger"
	"go.trai.ch/docsync/internal/core/ports"
)

// NodeID is the unique identifier for the settings store Graft node.
const NodeID graft.ID = "adapter.settings"

// DefaultPath returns the settings file location: the DOCSYNC_SETTINGS
// environment variable when set, otherwise the user config directory, with
// the working directory as last resort.
func DefaultPath() string {
	if path := os.Getenv("DOCSYNC_SETTINGS"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "docsync.yaml"
	}
	return filepath.Join(dir, "docsync", "settings.yaml")
}

func init() {
	graft.Register(graft.Node[ports.SettingsStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SettingsStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(DefaultPath(), log), nil
		},
	})
}
