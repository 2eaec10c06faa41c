package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docsync/internal/adapters/document"
	"go.trai.ch/docsync/internal/adapters/prompt"
	"go.trai.ch/docsync/internal/adapters/settings"
	"go.trai.ch/docsync/internal/adapters/watcher"
	"go.trai.ch/docsync/internal/app"
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

type nullWatcher struct{}

func (nullWatcher) AddPaths([]string) error { return nil }
func (nullWatcher) RemovePath(string) error { return nil }
func (nullWatcher) Events() <-chan string   { return nil }
func (nullWatcher) Errors() <-chan error    { return nil }
func (nullWatcher) Close() error            { return nil }

// chanWatcher hands the test direct control over the raw notification
// channel Run pumps from.
type chanWatcher struct {
	events chan string
	errs   chan error
}

func newChanWatcher() *chanWatcher {
	return &chanWatcher{events: make(chan string), errs: make(chan error)}
}

func (w *chanWatcher) AddPaths([]string) error { return nil }
func (w *chanWatcher) RemovePath(string) error { return nil }
func (w *chanWatcher) Events() <-chan string   { return w.events }
func (w *chanWatcher) Errors() <-chan error    { return w.errs }

func (w *chanWatcher) Close() error {
	close(w.events)
	close(w.errs)
	return nil
}

func headlessDialogs(log ports.Logger) app.Dialogs {
	h := prompt.New(prompt.DefaultPolicy(), log)
	return app.Dialogs{
		SaveSelection: h,
		ReadOnly:      h,
		Reload:        h,
		Removed:       h,
		SaveAs:        h,
	}
}

// newManager builds a Manager on fake watchers for tests that drive the
// engine directly instead of through Run.
func newManager(t *testing.T, opts app.Options) *app.Manager {
	t.Helper()
	store := settings.New(filepath.Join(t.TempDir(), "settings.yaml"), nopLogger{})
	return app.New(nullWatcher{}, nullWatcher{}, store, headlessDialogs(nopLogger{}), nil, nil, nopLogger{}, opts)
}

func TestManager_ModifiedDocuments(t *testing.T) {
	m := newManager(t, app.Options{})
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	doc, err := document.Open(path)
	require.NoError(t, err)
	m.AddDocument(doc, true)

	assert.Empty(t, m.ModifiedDocuments())
	doc.SetContent([]byte("edited"))
	assert.Equal(t, []ports.Document{doc}, m.ModifiedDocuments())

	m.RemoveDocument(doc)
	assert.Empty(t, m.ModifiedDocuments())
}

func TestManager_FilePathChanged(t *testing.T) {
	m := newManager(t, app.Options{})
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o644))

	doc, err := document.Open(oldPath)
	require.NoError(t, err)
	m.AddDocument(doc, true)

	require.NoError(t, os.Rename(oldPath, newPath))
	doc.SetFilePath(newPath)
	m.FilePathChanged(doc)

	doc.SetContent([]byte("edited"))
	assert.Equal(t, []ports.Document{doc}, m.ModifiedDocuments(),
		"the document stays tracked under its new path")
}

func TestManager_RenamedFile_Event(t *testing.T) {
	m := newManager(t, app.Options{})
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("x"), 0o644))

	doc, err := document.Open(oldPath)
	require.NoError(t, err)
	m.AddDocument(doc, true)

	var renamed []string
	m.Events().OnAllDocumentsRenamed(func(from, to string) {
		renamed = append(renamed, from, to)
	})

	require.NoError(t, os.Rename(oldPath, newPath))
	m.RenamedFile(oldPath, newPath)

	assert.Equal(t, []string{oldPath, newPath}, renamed)
	assert.Equal(t, newPath, doc.FilePath())
}

func TestManager_NotifyFilesChangedInternally(t *testing.T) {
	m := newManager(t, app.Options{})

	var got []string
	m.Events().OnFilesChangedInternally(func(paths []string) {
		got = append(got, paths...)
	})

	m.NotifyFilesChangedInternally([]string{"/tmp/a.txt"})
	assert.Equal(t, []string{"/tmp/a.txt"}, got)
}

func TestManager_SaveAllModifiedDocumentsSilently(t *testing.T) {
	m := newManager(t, app.Options{})
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	doc, err := document.Open(path)
	require.NoError(t, err)
	m.AddDocument(doc, true)
	doc.SetContent([]byte("edited"))

	result := m.SaveAllModifiedDocumentsSilently()
	assert.True(t, result.Ok())
	assert.False(t, doc.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "edited", string(data))
}

func TestManager_SettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := settings.New(filepath.Join(dir, "settings.yaml"), nopLogger{})

	filePath := filepath.Join(dir, "recent.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	m := app.New(nullWatcher{}, nullWatcher{}, store, headlessDialogs(nopLogger{}), nil, nil, nopLogger{}, app.Options{})
	m.AddToRecentFiles(filePath, "text")
	m.SetProjectsDirectory("/projects")
	m.SetUseProjectsDirectory(true)
	require.NoError(t, m.SaveSettings())

	restored := app.New(nullWatcher{}, nullWatcher{}, store, headlessDialogs(nopLogger{}), nil, nil, nopLogger{}, app.Options{})
	require.NoError(t, restored.ReadSettings())

	recent := restored.RecentFiles()
	require.Len(t, recent, 1)
	assert.Equal(t, filePath, recent[0].Path)
	assert.Equal(t, "text", recent[0].EditorID)
	assert.Equal(t, "/projects", restored.ProjectsDirectory())
	assert.True(t, restored.UseProjectsDirectory())
}

func TestEvents_ListenerOrder(t *testing.T) {
	e := &app.Events{}

	var order []int
	e.OnFilesChangedExternally(func([]string) { order = append(order, 1) })
	e.OnFilesChangedExternally(func([]string) { order = append(order, 2) })

	e.FilesChangedExternally([]string{"/tmp/a.txt"})
	assert.Equal(t, []int{1, 2}, order)
}

func TestManager_ProjectsDirectoryChangedEvent(t *testing.T) {
	m := newManager(t, app.Options{})

	var got []string
	m.Events().OnProjectsDirectoryChanged(func(dir string) { got = append(got, dir) })

	m.SetProjectsDirectory("/projects")
	m.SetProjectsDirectory("/projects") // unchanged, no event
	m.SetProjectsDirectory("/other")

	assert.Equal(t, []string{"/projects", "/other"}, got)
}

func TestManager_FilePathKey(t *testing.T) {
	m := newManager(t, app.Options{})

	a := m.FilePathKey("/tmp/sub/../a.txt", domain.KeepLinks)
	b := m.FilePathKey("/tmp/a.txt", domain.KeepLinks)
	assert.Equal(t, b, a)
}

// runManager starts the engine loop on its own goroutine, which adopts
// ownership, registers docs and runs until ctx is cancelled.
func runManager(ctx context.Context, m *app.Manager, docs []ports.Document) <-chan error {
	done := make(chan error, 1)
	go func() {
		m.Adopt()
		m.AddDocuments(docs)
		done <- m.Run(ctx)
	}()
	return done
}

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
		panic("unreachable")
	}
}

func TestManager_Run_ReloadsChangedDocument(t *testing.T) {
	fileWatcher, err := watcher.New()
	require.NoError(t, err)
	linkWatcher, err := watcher.New()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	doc, err := document.Open(path)
	require.NoError(t, err)

	store := settings.New(filepath.Join(dir, "settings.yaml"), nopLogger{})
	m := app.New(fileWatcher, linkWatcher, store, headlessDialogs(nopLogger{}), nil, nil, nopLogger{}, app.Options{
		DebounceWindow: 50 * time.Millisecond,
	})

	changed := make(chan []string, 1)
	m.Events().OnFilesChangedExternally(func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := runManager(ctx, m, []ports.Document{doc})

	// Give the run goroutine a moment to register the watch.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("changed externally"), 0o644))

	paths := waitFor(t, changed, "external change event")
	assert.Contains(t, paths, path)

	cancel()
	err = waitFor(t, done, "engine shutdown")
	assert.ErrorIs(t, err, context.Canceled)

	// Ownership is free again after Run returned.
	m.Adopt()
	assert.Equal(t, []byte("changed externally"), doc.Content())
	assert.False(t, doc.IsModified())
}

func TestManager_Run_UncleanedNotificationPath(t *testing.T) {
	fileWatcher := newChanWatcher()
	linkWatcher := newChanWatcher()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	doc, err := document.Open(path)
	require.NoError(t, err)

	store := settings.New(filepath.Join(dir, "settings.yaml"), nopLogger{})
	m := app.New(fileWatcher, linkWatcher, store, headlessDialogs(nopLogger{}), nil, nil, nopLogger{}, app.Options{
		DebounceWindow: 50 * time.Millisecond,
	})

	changed := make(chan []string, 1)
	m.Events().OnFilesChangedExternally(func(paths []string) {
		select {
		case changed <- paths:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := runManager(ctx, m, []ports.Document{doc})

	// Give the run goroutine a moment to register the document.
	time.Sleep(100 * time.Millisecond)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("changed externally"), 0o644))
	mtime := info.ModTime().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	// Report the change through an uncleaned spelling of the same file.
	reported := dir + "/./a.txt"
	fileWatcher.events <- reported

	paths := waitFor(t, changed, "external change event")
	assert.Contains(t, paths, reported)

	cancel()
	err = waitFor(t, done, "engine shutdown")
	assert.ErrorIs(t, err, context.Canceled)

	m.Adopt()
	assert.Equal(t, []byte("changed externally"), doc.Content())
}

func TestManager_Run_ClosesRemovedDocument(t *testing.T) {
	fileWatcher, err := watcher.New()
	require.NoError(t, err)
	linkWatcher, err := watcher.New()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	doc, err := document.Open(path)
	require.NoError(t, err)

	store := settings.New(filepath.Join(dir, "settings.yaml"), nopLogger{})
	m := app.New(fileWatcher, linkWatcher, store, headlessDialogs(nopLogger{}), nil, nil, nopLogger{}, app.Options{
		DebounceWindow: 50 * time.Millisecond,
	})

	closed := make(chan []ports.Document, 1)
	m.Events().OnDocumentsClosed(func(docs []ports.Document) {
		select {
		case closed <- docs:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runManager(ctx, m, []ports.Document{doc})

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.Remove(path))

	docs := waitFor(t, closed, "closed-documents event")
	assert.Equal(t, []ports.Document{doc}, docs)

	cancel()
	err = waitFor(t, done, "engine shutdown")
	assert.ErrorIs(t, err, context.Canceled)

	m.Adopt()
	assert.Empty(t, m.ModifiedDocuments(), "the closed document is no longer tracked")
}

func TestManager_ExpectFileChange_SuppressesPrompt(t *testing.T) {
	m := newManager(t, app.Options{DefaultBehavior: domain.AlwaysAsk})
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	doc, err := document.Open(path)
	require.NoError(t, err)
	m.AddDocument(doc, true)

	m.ExpectFileChange(path)
	require.NoError(t, os.WriteFile(path, []byte("rewritten"), 0o644))
	m.UnexpectFileChange(path)

	// The snapshot taken by UnexpectFileChange covers the rewrite; a pass
	// started now has nothing external to report.
	m.CheckForReload()
	assert.False(t, doc.IsModified())
	assert.Equal(t, []byte("x"), doc.Content(), "no reload happened for the expected change")
}
