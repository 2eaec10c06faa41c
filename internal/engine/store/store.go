// Package store owns the per-path file state records of the engine: which
// documents watch which normalized paths, the metadata last synchronized per
// document, and the snapshots taken when a change is expected. It is the only
// component that talks to the watch primitive's registration side.
package store

import (
	"slices"

	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/engine/owner"
	"go.trai.ch/zerr"
)

// record is the per-path state shared by all documents watching that path.
// A record exists for a path key iff at least one document watches it.
type record struct {
	// watchedPath is the path registered with the watch primitive.
	watchedPath string
	// lastUpdated holds, per document, the metadata captured the last time
	// the engine synchronized that document against disk.
	lastUpdated map[ports.Document]domain.FileMeta
	// expected is the metadata snapshot taken when a change to this path was
	// last marked expected. Overwritten on every unexpect, never cleared.
	expected domain.FileMeta
}

// Store tracks every watched document and its file state records.
//
// Store is single-owner: all mutating calls must come from the goroutine that
// created it. The reconciliation pass observes records re-entrantly (modal
// prompts pump notifications), so records are always fully updated before any
// add/remove operation returns.
type Store struct {
	guard    owner.Check
	log      ports.Logger
	notifier ports.Notifier

	fileWatcher ports.Watcher // direct paths and resolved link targets
	linkWatcher ports.Watcher // the symbolic-link paths themselves

	states        map[string]*record           // path key -> record
	withWatch     map[ports.Document][]string  // document -> its path keys, cached at registration
	withWatchDocs []ports.Document             // registration order, for deterministic passes
	withoutWatch  []ports.Document             // documents opted out of watching
	expectedPaths map[string]struct{}          // raw, non-normalized paths marked "expect next change"

	// blocked is the document currently being reconciled or renamed; change
	// notifications attributable to it are ignored so the engine's own
	// mutations do not re-trigger classification.
	blocked ports.Document
}

// New creates a Store bound to the calling goroutine. fileWatcher receives
// direct paths and resolved symlink targets, linkWatcher the link paths
// themselves; they may be the same instance.
func New(log ports.Logger, notifier ports.Notifier, fileWatcher, linkWatcher ports.Watcher) *Store {
	return &Store{
		guard:         owner.Capture(),
		log:           log,
		notifier:      notifier,
		fileWatcher:   fileWatcher,
		linkWatcher:   linkWatcher,
		states:        make(map[string]*record),
		withWatch:     make(map[ports.Document][]string),
		expectedPaths: make(map[string]struct{}),
	}
}

// Adopt transfers store ownership to the calling goroutine. Must happen
// before any other call when the store was constructed elsewhere.
func (s *Store) Adopt() {
	s.guard.Adopt()
}

// addFileInfo records doc's state under key without touching the watch
// primitive. Empty keys are never tracked but still cached on the document so
// path-less documents stay registered.
func (s *Store) addFileInfo(doc ports.Document, key string) {
	if key != "" {
		meta, _ := domain.StatMeta(key)
		s.log.Debug("adding document state", "key", key)

		rec, ok := s.states[key]
		if !ok {
			rec = &record{
				watchedPath: key,
				lastUpdated: make(map[ports.Document]domain.FileMeta),
			}
			s.states[key] = rec
		}
		rec.lastUpdated[doc] = meta
	}
	if _, ok := s.withWatch[doc]; !ok {
		s.withWatchDocs = append(s.withWatchDocs, doc)
	}
	s.withWatch[doc] = append(s.withWatch[doc], key)
}

// addFileInfos registers the documents' paths (link path plus resolved target
// when they differ) and adds watches, batched into at most one registration
// call per watcher.
func (s *Store) addFileInfos(docs []ports.Document) {
	var pathsToWatch, linkPathsToWatch []string

	for _, doc := range docs {
		key := domain.Key(doc.FilePath(), domain.KeepLinks)
		resolved := domain.Key(doc.FilePath(), domain.ResolveLinks)
		isLink := key != "" && key != resolved

		s.addFileInfo(doc, key)

		if isLink {
			s.addFileInfo(doc, resolved)
			linkPathsToWatch = append(linkPathsToWatch, s.states[key].watchedPath)
			pathsToWatch = append(pathsToWatch, s.states[resolved].watchedPath)
		} else if key != "" {
			pathsToWatch = append(pathsToWatch, s.states[key].watchedPath)
		}
	}

	if len(pathsToWatch) > 0 {
		s.log.Debug("adding full watch", "paths", pathsToWatch)
		if err := s.fileWatcher.AddPaths(pathsToWatch); err != nil {
			s.log.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}
	if len(linkPathsToWatch) > 0 {
		s.log.Debug("adding link watch", "paths", linkPathsToWatch)
		if err := s.linkWatcher.AddPaths(linkPathsToWatch); err != nil {
			s.log.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}
}

// AddDocuments adds documents to the collection. With watch == true their
// backing files are registered with the watch primitive; otherwise they are
// kept on a separate unwatched list and never touch the state records.
func (s *Store) AddDocuments(docs []ports.Document, watch bool) {
	s.guard.Assert()

	if !watch {
		for _, doc := range docs {
			if doc != nil && !slices.Contains(s.withoutWatch, doc) {
				s.withoutWatch = append(s.withoutWatch, doc)
			}
		}
		return
	}

	toWatch := make([]ports.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if _, ok := s.withWatch[doc]; ok {
			continue
		}
		toWatch = append(toWatch, doc)
	}

	s.addFileInfos(toWatch)
}

// removeFileInfo removes doc from every record it appears in, using the path
// keys cached at registration time. Records left empty lose their watch and
// are deleted.
func (s *Store) removeFileInfo(doc ports.Document) {
	s.guard.Assert()

	keys, ok := s.withWatch[doc]
	if !ok {
		return
	}

	for _, key := range keys {
		rec, ok := s.states[key]
		if !ok {
			continue
		}

		s.log.Debug("removing document state", "key", key)
		delete(rec.lastUpdated, doc)

		if len(rec.lastUpdated) == 0 {
			s.log.Debug("removing watch", "path", rec.watchedPath)
			// The path may be registered with either watcher; removing an
			// unwatched path is a no-op.
			_ = s.fileWatcher.RemovePath(rec.watchedPath)
			_ = s.linkWatcher.RemovePath(rec.watchedPath)
			delete(s.states, key)
		}
	}

	delete(s.withWatch, doc)
	if i := slices.Index(s.withWatchDocs, doc); i >= 0 {
		s.withWatchDocs = slices.Delete(s.withWatchDocs, i, i+1)
	}
}

// RemoveDocument removes a document from the collection and reports whether
// it had been registered with a watch. Safe to call with a document that is
// being destroyed: only the cached path keys are consulted.
func (s *Store) RemoveDocument(doc ports.Document) bool {
	s.guard.Assert()

	if i := slices.Index(s.withoutWatch, doc); i >= 0 {
		s.withoutWatch = slices.Delete(s.withoutWatch, i, i+1)
		return false
	}

	s.removeFileInfo(doc)
	return true
}

// Refresh re-synchronizes a document's records with its current path and the
// on-disk state, e.g. after a save under a different name or when a link
// target changed.
func (s *Store) Refresh(doc ports.Document) {
	s.removeFileInfo(doc)
	s.addFileInfos([]ports.Document{doc})
}

// RenamedFile tells the store that a file was renamed from one path to
// another by the application itself. Must be called right after the rename on
// disk, before the watch primitive reports it. Every document watching the
// old path is re-registered under the new one, with notifications caused by
// the mutation suppressed.
func (s *Store) RenamedFile(from, to string) {
	s.guard.Assert()

	fromKey := domain.Key(from, domain.KeepLinks)

	var docsToRename []ports.Document
	for _, doc := range s.withWatchDocs {
		if slices.Contains(s.withWatch[doc], fromKey) {
			docsToRename = append(docsToRename, doc)
		}
	}

	for _, doc := range docsToRename {
		s.blocked = doc
		s.removeFileInfo(doc)
		doc.SetFilePath(to)
		s.addFileInfos([]ports.Document{doc})
		s.blocked = nil

		s.notifier.DocumentRenamed(doc, from, to)
	}

	s.notifier.AllDocumentsRenamed(from, to)
}

// Block suppresses change notifications attributable to doc until Unblock.
func (s *Store) Block(doc ports.Document) {
	s.guard.Assert()
	s.blocked = doc
}

// Unblock lifts the suppression installed by Block.
func (s *Store) Unblock() {
	s.guard.Assert()
	s.blocked = nil
}

// IsBlocked reports whether doc's notifications are currently suppressed.
func (s *Store) IsBlocked(doc ports.Document) bool {
	return doc != nil && doc == s.blocked
}

// IsTracked reports whether any document watches the given path key.
func (s *Store) IsTracked(key string) bool {
	_, ok := s.states[key]
	return ok
}

// KeysForDocument returns the path keys cached for doc at registration time.
func (s *Store) KeysForDocument(doc ports.Document) []string {
	return s.withWatch[doc]
}

// DocumentsForKey returns the documents watching the given path key.
func (s *Store) DocumentsForKey(key string) []ports.Document {
	rec, ok := s.states[key]
	if !ok {
		return nil
	}
	// Deterministic order: registration order of the watched documents.
	docs := make([]ports.Document, 0, len(rec.lastUpdated))
	for _, doc := range s.withWatchDocs {
		if _, ok := rec.lastUpdated[doc]; ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// LastMeta returns the metadata last synchronized for doc under key.
func (s *Store) LastMeta(key string, doc ports.Document) (domain.FileMeta, bool) {
	rec, ok := s.states[key]
	if !ok {
		return domain.FileMeta{}, false
	}
	meta, ok := rec.lastUpdated[doc]
	return meta, ok
}

// ExpectedMeta returns the expected-state snapshot recorded for key.
func (s *Store) ExpectedMeta(key string) (domain.FileMeta, bool) {
	rec, ok := s.states[key]
	if !ok {
		return domain.FileMeta{}, false
	}
	return rec.expected, true
}

// ModifiedDocuments returns every tracked document with unsaved edits,
// watched ones first in registration order, then the unwatched list.
func (s *Store) ModifiedDocuments() []ports.Document {
	var modified []ports.Document
	for _, doc := range s.withWatchDocs {
		if doc.IsModified() {
			modified = append(modified, doc)
		}
	}
	for _, doc := range s.withoutWatch {
		if doc.IsModified() {
			modified = append(modified, doc)
		}
	}
	return modified
}
