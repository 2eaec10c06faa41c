package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/docsync/internal/core/ports"
)

// NodeID is the unique identifier for the watcher pair Graft node.
const NodeID graft.ID = "adapter.watcher"

// Pair holds the two independent watcher instances the engine uses: Files
// watches the paths documents report, Links watches symlink paths so a
// relinked symlink is observed even when its target is unchanged.
type Pair struct {
	Files ports.Watcher
	Links ports.Watcher
}

func init() {
	graft.Register(graft.Node[*Pair]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Pair, error) {
			files, err := New()
			if err != nil {
				return nil, err
			}
			links, err := New()
			if err != nil {
				_ = files.Close()
				return nil, err
			}
			return &Pair{Files: files, Links: links}, nil
		},
	})
}
