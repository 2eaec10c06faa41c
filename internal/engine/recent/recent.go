// Package recent maintains the most-recently-used file list.
package recent

import (
	"os"

	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
)

// DefaultMaxEntries is the number of entries kept when no explicit bound is
// configured.
const DefaultMaxEntries = 7

// Ledger is a bounded, ordered list of recently used files. Entries are
// unique per canonical path; re-adding a known file moves it to the front.
// Ledger is confined to the owning goroutine like the rest of the engine.
type Ledger struct {
	max     int
	entries []domain.RecentFile
	store   ports.SettingsStore
	log     ports.Logger
}

// New creates a ledger holding at most max entries. A non-positive max falls
// back to DefaultMaxEntries.
func New(max int, store ports.SettingsStore, log ports.Logger) *Ledger {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Ledger{max: max, store: store, log: log}
}

// Add puts the file at the front of the list. Files with an empty path and
// temporary files are the caller's responsibility to filter; Add only rejects
// the empty path. Existing entries for the same canonical path are removed
// first, so the list never holds duplicates.
func (l *Ledger) Add(path, editorID string) {
	if path == "" {
		return
	}
	key := domain.Key(path, domain.KeepLinks)

	kept := l.entries[:0]
	for _, e := range l.entries {
		if domain.Key(e.Path, domain.KeepLinks) != key {
			kept = append(kept, e)
		}
	}
	l.entries = kept

	l.entries = append([]domain.RecentFile{{Path: path, EditorID: editorID}}, l.entries...)
	if len(l.entries) > l.max {
		l.entries = l.entries[:l.max]
	}
}

// Clear empties the list.
func (l *Ledger) Clear() {
	l.entries = nil
}

// List returns the entries, most recent first. The returned slice is a copy.
func (l *Ledger) List() []domain.RecentFile {
	out := make([]domain.RecentFile, len(l.entries))
	copy(out, l.entries)
	return out
}

// Save persists the list through the settings store.
func (l *Ledger) Save() error {
	state := ports.RecentFilesState{
		Files:     make([]string, 0, len(l.entries)),
		EditorIDs: make([]string, 0, len(l.entries)),
	}
	for _, e := range l.entries {
		state.Files = append(state.Files, e.Path)
		state.EditorIDs = append(state.EditorIDs, e.EditorID)
	}
	return l.store.WriteRecentFiles(state)
}

// Load replaces the list with the persisted one. Entries whose file no
// longer exists are dropped. Editor ids beyond the stored list default to
// empty.
func (l *Ledger) Load() error {
	state, err := l.store.ReadRecentFiles()
	if err != nil {
		return err
	}
	l.entries = l.entries[:0]
	for i, path := range state.Files {
		if len(l.entries) >= l.max {
			break
		}
		if _, statErr := os.Stat(path); statErr != nil {
			l.log.Debug("dropping recent file that no longer exists", "path", path)
			continue
		}
		var editorID string
		if i < len(state.EditorIDs) {
			editorID = state.EditorIDs[i]
		}
		l.entries = append(l.entries, domain.RecentFile{Path: path, EditorID: editorID})
	}
	return nil
}
