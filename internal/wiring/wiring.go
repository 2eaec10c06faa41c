// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/docsync/internal/adapters/logger"
	_ "go.trai.ch/docsync/internal/adapters/prompt"
	_ "go.trai.ch/docsync/internal/adapters/settings"
	_ "go.trai.ch/docsync/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/docsync/internal/app"
)
