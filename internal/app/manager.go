// Package app implements the application layer for docsync: the Manager
// facade the embedding application talks to, and the event fan-out.
package app

import (
	"context"
	"time"

	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/engine/recent"
	"go.trai.ch/docsync/internal/engine/reconcile"
	"go.trai.ch/docsync/internal/engine/saver"
	"go.trai.ch/docsync/internal/engine/store"
	"golang.org/x/sync/errgroup"
)

// Options configures a Manager.
type Options struct {
	// DefaultBehavior is the global reconciliation policy.
	DefaultBehavior domain.DefaultBehavior
	// DebounceWindow is the delay between the first raw notification of a
	// burst and the reconciliation pass. Zero picks the default.
	DebounceWindow time.Duration
	// MaxRecentFiles bounds the recent-files list. Zero picks the default.
	MaxRecentFiles int
}

// Manager ties the engine together and is the single entry point for the
// embedding application. All methods except Run's internal pumps must be
// called from the goroutine that created the Manager; Run itself blocks and
// must run on that same goroutine.
type Manager struct {
	store      *store.Store
	queue      *reconcile.Queue
	reconciler *reconcile.Reconciler
	saver      *saver.Coordinator
	recent     *recent.Ledger

	fileWatcher ports.Watcher
	linkWatcher ports.Watcher
	settings    ports.SettingsStore
	events      *Events
	log         ports.Logger

	projectsDirectory    string
	useProjectsDirectory bool
}

// Dialogs bundles the modal dialog implementations a Manager needs.
type Dialogs struct {
	SaveSelection ports.SaveSelectionDialog
	ReadOnly      ports.ReadOnlyDialog
	Reload        ports.ReloadPrompter
	Removed       ports.RemovedPrompter
	SaveAs        ports.SaveAsChooser
}

// New creates a Manager. fileWatcher and linkWatcher are two independent
// watch instances; link paths are registered on the latter so that replacing
// a symlink is observed even when its target is unchanged.
func New(
	fileWatcher, linkWatcher ports.Watcher,
	settings ports.SettingsStore,
	dialogs Dialogs,
	differ ports.Differ,
	closer ports.DocumentCloser,
	log ports.Logger,
	opts Options,
) *Manager {
	events := &Events{}
	st := store.New(log, events, fileWatcher, linkWatcher)
	// Watchers report whatever path the kernel hands them; filter by the
	// canonical key so relative or uncleaned spellings still match.
	queue := reconcile.NewQueue(opts.DebounceWindow, func(path string) bool {
		return st.IsTracked(domain.Key(path, domain.KeepLinks))
	})
	if closer == nil {
		// Headless default: closing means forgetting. Listeners that hold
		// the documents hear about it through the closed event.
		closer = &untrackCloser{store: st, events: events}
	}
	sv := saver.New(st, dialogs.SaveSelection, dialogs.ReadOnly, differ, log, queue)
	rec := reconcile.New(st, queue, sv, opts.DefaultBehavior, reconcile.Prompts{
		Reload:  dialogs.Reload,
		Removed: dialogs.Removed,
		SaveAs:  dialogs.SaveAs,
	}, differ, closer, events, log)

	return &Manager{
		store:       st,
		queue:       queue,
		reconciler:  rec,
		saver:       sv,
		recent:      recent.New(opts.MaxRecentFiles, settings, log),
		fileWatcher: fileWatcher,
		linkWatcher: linkWatcher,
		settings:    settings,
		events:      events,
		log:         log,
	}
}

// untrackCloser is the closer used when the embedder does not wire one.
type untrackCloser struct {
	store  *store.Store
	events *Events
}

func (c *untrackCloser) CloseDocuments(docs []ports.Document, _ bool) {
	for _, doc := range docs {
		c.store.RemoveDocument(doc)
	}
	c.events.DocumentsClosed(docs)
}

// Adopt transfers engine ownership to the calling goroutine. Required once
// after construction when the Manager was built on a different goroutine,
// before any other call.
func (m *Manager) Adopt() {
	m.store.Adopt()
	m.queue.Adopt()
}

// Events exposes the listener registry.
func (m *Manager) Events() *Events {
	return m.events
}

// SetDefaultBehavior changes the global reconciliation policy.
func (m *Manager) SetDefaultBehavior(behavior domain.DefaultBehavior) {
	m.reconciler.SetDefaultBehavior(behavior)
}

// SetDebounceWindow changes the delay between the first raw notification of
// a burst and the reconciliation pass.
func (m *Manager) SetDebounceWindow(window time.Duration) {
	m.queue.SetWindow(window)
}

// AddDocument starts tracking doc. With watch == true its backing paths are
// also registered with the file system watchers; without, the document is
// only consulted for modified-document queries and batch saves.
func (m *Manager) AddDocument(doc ports.Document, watch bool) {
	m.store.AddDocuments([]ports.Document{doc}, watch)
}

// AddDocuments starts tracking all docs, with watching enabled.
func (m *Manager) AddDocuments(docs []ports.Document) {
	m.store.AddDocuments(docs, true)
}

// RemoveDocument stops tracking doc.
func (m *Manager) RemoveDocument(doc ports.Document) {
	m.store.RemoveDocument(doc)
}

// DocumentDestroyed must be called when the embedding application destroys a
// document, tracked or not.
func (m *Manager) DocumentDestroyed(doc ports.Document) {
	m.store.RemoveDocument(doc)
}

// FilePathChanged re-registers doc under its new backing path. Calls for the
// document currently being reconciled are ignored; the pass refreshes its
// state itself.
func (m *Manager) FilePathChanged(doc ports.Document) {
	if m.store.IsBlocked(doc) {
		return
	}
	wasWatched := m.store.RemoveDocument(doc)
	m.store.AddDocuments([]ports.Document{doc}, wasWatched)
}

// FilePathKey returns the canonical tracking key for path. Two paths naming
// the same file produce the same key.
func (m *Manager) FilePathKey(path string, mode domain.ResolveMode) string {
	return domain.Key(path, mode)
}

// RenamedFile moves the file on disk from from to to and retargets every
// tracked document backed by from. The on-disk rename is the caller's
// responsibility; RenamedFile only adjusts the tracked state.
func (m *Manager) RenamedFile(from, to string) {
	m.store.RenamedFile(from, to)
}

// ModifiedDocuments returns the tracked documents with unsaved edits.
func (m *Manager) ModifiedDocuments() []ports.Document {
	return m.store.ModifiedDocuments()
}

// ExpectFileChange marks an upcoming self-inflicted change to path. Must be
// paired with UnexpectFileChange after the change happened.
func (m *Manager) ExpectFileChange(path string) {
	m.store.ExpectChange(path)
}

// UnexpectFileChange ends the expectation for path and snapshots the file's
// current state, so the change the application just made is not reported as
// external.
func (m *Manager) UnexpectFileChange(path string) {
	m.store.UnexpectChange(path)
}

// BlockFileChange is the scoped form of Expect/UnexpectFileChange.
func (m *Manager) BlockFileChange(path string) *store.FileChangeBlocker {
	return m.store.BlockFileChange(path)
}

// SetApplicationActive tells the engine whether the application has focus.
// Reconciliation passes are deferred while inactive and caught up when focus
// returns.
func (m *Manager) SetApplicationActive(active bool) {
	m.queue.SetActive(active)
}

// SetPostponeAutoReload suppresses reconciliation passes while set, with a
// short grace period after lowering so in-flight notifications settle first.
func (m *Manager) SetPostponeAutoReload(postpone bool) {
	m.queue.SetPostponeAutoReload(postpone)
}

// CheckForReload runs a reconciliation pass now if one is due and allowed.
func (m *Manager) CheckForReload() {
	m.reconciler.CheckForReload()
}

// NotifyFilesChangedInternally announces changes the application made itself
// to display-only consumers.
func (m *Manager) NotifyFilesChangedInternally(paths []string) {
	m.events.FilesChangedInternally(paths)
}

// SaveDocument saves doc to path (or its own path when empty), suspending
// its watch around the write so the engine does not see the save as an
// external change.
func (m *Manager) SaveDocument(doc ports.Document, path string) error {
	return m.saver.SaveDocument(doc, path)
}

// SaveModifiedDocuments shows the save-selection dialog for the modified
// documents among docs and saves the chosen ones.
func (m *Manager) SaveModifiedDocuments(docs []ports.Document, message, alwaysSaveMessage string) saver.Result {
	return m.saver.SaveModified(docs, message, alwaysSaveMessage, false)
}

// SaveModifiedDocumentsSilently saves the modified documents among docs
// without asking.
func (m *Manager) SaveModifiedDocumentsSilently(docs []ports.Document) saver.Result {
	return m.saver.SaveModified(docs, "", "", true)
}

// SaveAllModifiedDocuments is SaveModifiedDocuments over every tracked
// modified document.
func (m *Manager) SaveAllModifiedDocuments(message, alwaysSaveMessage string) saver.Result {
	return m.saver.SaveModified(m.store.ModifiedDocuments(), message, alwaysSaveMessage, false)
}

// SaveAllModifiedDocumentsSilently saves every tracked modified document
// without asking.
func (m *Manager) SaveAllModifiedDocumentsSilently() saver.Result {
	return m.saver.SaveModified(m.store.ModifiedDocuments(), "", "", true)
}

// AddToRecentFiles puts path at the front of the recent-files list.
func (m *Manager) AddToRecentFiles(path, editorID string) {
	m.recent.Add(path, editorID)
}

// RecentFiles returns the recent-files list, most recent first.
func (m *Manager) RecentFiles() []domain.RecentFile {
	return m.recent.List()
}

// ClearRecentFiles empties the recent-files list.
func (m *Manager) ClearRecentFiles() {
	m.recent.Clear()
}

// ProjectsDirectory returns the configured default directory for projects.
func (m *Manager) ProjectsDirectory() string {
	return m.projectsDirectory
}

// SetProjectsDirectory sets the default directory for projects.
func (m *Manager) SetProjectsDirectory(dir string) {
	if m.projectsDirectory == dir {
		return
	}
	m.projectsDirectory = dir
	m.events.ProjectsDirectoryChanged(dir)
}

// UseProjectsDirectory reports whether file dialogs should start in the
// projects directory.
func (m *Manager) UseProjectsDirectory() bool {
	return m.useProjectsDirectory
}

// SetUseProjectsDirectory sets whether file dialogs should start in the
// projects directory.
func (m *Manager) SetUseProjectsDirectory(use bool) {
	m.useProjectsDirectory = use
}

// SaveSettings persists the recent-files list and the directories group.
func (m *Manager) SaveSettings() error {
	if err := m.recent.Save(); err != nil {
		return err
	}
	return m.settings.WriteDirectories(ports.DirectoriesState{
		Projects:    m.projectsDirectory,
		UseProjects: m.useProjectsDirectory,
	})
}

// ReadSettings loads the recent-files list and the directories group.
func (m *Manager) ReadSettings() error {
	if err := m.recent.Load(); err != nil {
		return err
	}
	dirs, err := m.settings.ReadDirectories()
	if err != nil {
		return err
	}
	m.projectsDirectory = dirs.Projects
	m.useProjectsDirectory = dirs.UseProjects
	return nil
}

// Run is the engine's event loop. It forwards raw watcher notifications into
// the queue and runs reconciliation passes when the queue signals. Run blocks
// until ctx is cancelled and must be called from the owning goroutine; both
// watchers are closed on the way out.
//
// The pump goroutines only move values between channels. Everything that
// touches engine state happens in the select loop below, on the owning
// goroutine.
func (m *Manager) Run(ctx context.Context) error {
	raw := make(chan string)

	g, ctx := errgroup.WithContext(ctx)
	pump := func(w ports.Watcher) func() error {
		return func() error {
			events, errs := w.Events(), w.Errors()
			for {
				select {
				case path, ok := <-events:
					if !ok {
						return nil
					}
					select {
					case raw <- path:
					case <-ctx.Done():
						return ctx.Err()
					}
				case err, ok := <-errs:
					if !ok {
						return nil
					}
					m.log.Error(err)
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	}
	g.Go(pump(m.fileWatcher))
	g.Go(pump(m.linkWatcher))

	for {
		select {
		case path := <-raw:
			m.queue.Notify(path)
		case <-m.queue.C():
			m.reconciler.CheckForReload()
		case <-ctx.Done():
			if err := m.fileWatcher.Close(); err != nil {
				m.log.Error(err)
			}
			if err := m.linkWatcher.Close(); err != nil {
				m.log.Error(err)
			}
			_ = g.Wait()
			return ctx.Err()
		}
	}
}
