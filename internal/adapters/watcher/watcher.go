// Package watcher implements the file system watch port on fsnotify.
package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher delivers change notifications for individual files. Watches are
// placed on the parent directories and filtered to the registered files, so
// a watched file that is removed and recreated keeps reporting without
// re-registration.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan string
	errors    chan error

	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]int
}

// New creates a watcher. Callers own the returned watcher and must Close it.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "cannot create file system watcher")
	}
	w := &Watcher{
		fsWatcher: fsw,
		events:    make(chan string, eventChannelBuffer),
		errors:    make(chan error, 1),
		files:     map[string]struct{}{},
		dirs:      map[string]int{},
	}
	go w.loop()
	return w, nil
}

// AddPaths registers the given file paths. Already-registered paths are
// skipped. When any directory watch fails the remaining paths are still
// attempted and a single wrapped error is returned.
func (w *Watcher) AddPaths(paths []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	for _, path := range paths {
		path = filepath.Clean(path)
		if _, ok := w.files[path]; ok {
			continue
		}
		dir := filepath.Dir(path)
		if w.dirs[dir] == 0 {
			if err := w.fsWatcher.Add(dir); err != nil {
				if firstErr == nil {
					firstErr = zerr.With(zerr.Wrap(err, "cannot watch directory"), "dir", dir)
				}
				continue
			}
		}
		w.files[path] = struct{}{}
		w.dirs[dir]++
	}
	return firstErr
}

// RemovePath deregisters path. Removing an unknown path is a no-op.
func (w *Watcher) RemovePath(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	path = filepath.Clean(path)
	if _, ok := w.files[path]; !ok {
		return nil
	}
	delete(w.files, path)

	dir := filepath.Dir(path)
	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	if err := w.fsWatcher.Remove(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "cannot unwatch directory"), "dir", dir)
	}
	return nil
}

// Events returns the channel of changed file paths. Closed by Close.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Errors returns the channel of watch-level failures. Closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close releases the underlying watch resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	defer close(w.events)
	defer close(w.errors)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if path, registered := w.match(event.Name); registered {
				w.events <- path
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
				// A pending error is still unread; drop the newer one.
			}
		}
	}
}

// match reports whether the event concerns a registered file.
func (w *Watcher) match(name string) (string, bool) {
	path := filepath.Clean(name)
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[path]
	return path, ok
}
