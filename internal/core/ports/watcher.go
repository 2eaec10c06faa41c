package ports

// Watcher is the external file system change notification primitive. The
// engine registers individual file paths and receives their raw change
// notifications; debouncing and classification happen above this interface.
//
// Two independent instances may be in use at once: one for direct paths and
// one dedicated to symbolic-link paths, both feeding the same notification
// queue.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// AddPaths registers the given file paths for change notifications.
	// Registering an already-watched path is a no-op.
	AddPaths(paths []string) error

	// RemovePath deregisters a single path. Removing an unwatched path is
	// not an error.
	RemovePath(path string) error

	// Events returns the channel on which changed paths are delivered.
	// The channel is closed when the watcher is closed.
	Events() <-chan string

	// Errors returns the channel on which watch-level failures are delivered.
	Errors() <-chan error

	// Close releases the underlying watch resources.
	Close() error
}
