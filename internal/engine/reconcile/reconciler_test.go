package reconcile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/core/ports/mocks"
	"go.trai.ch/docsync/internal/engine/reconcile"
	"go.trai.ch/docsync/internal/engine/saver"
	"go.trai.ch/docsync/internal/engine/store"
	"go.uber.org/mock/gomock"
)

// fakeDoc is a stateful document for reconciliation tests.
type fakeDoc struct {
	path     string
	modified bool
	behavior func(trigger domain.Trigger, typ domain.ChangeType) domain.Behavior

	reloads  int
	lastFlag domain.ReloadFlag
	lastType domain.ChangeType
	saves    []string
}

func (d *fakeDoc) FilePath() string { return d.path }
func (d *fakeDoc) SetFilePath(path string) { d.path = path }
func (d *fakeDoc) IsModified() bool { return d.modified }
func (d *fakeDoc) IsTemporary() bool { return false }
func (d *fakeDoc) IsFileReadOnly() bool { return false }
func (d *fakeDoc) CheckPermissions() {}
func (d *fakeDoc) FallbackSaveAsPath() string { return d.path }

func (d *fakeDoc) Reload(flag domain.ReloadFlag, typ domain.ChangeType) error {
	d.reloads++
	d.lastFlag = flag
	d.lastType = typ
	if flag == domain.FlagReload {
		d.modified = false
	}
	return nil
}

func (d *fakeDoc) ReloadBehavior(trigger domain.Trigger, typ domain.ChangeType) domain.Behavior {
	if d.behavior != nil {
		return d.behavior(trigger, typ)
	}
	return domain.BehaviorAsk
}

func (d *fakeDoc) Save(path string, _ bool) error {
	if path == "" {
		path = d.path
	}
	if err := os.WriteFile(path, []byte("saved"), 0o644); err != nil {
		return err
	}
	d.saves = append(d.saves, path)
	d.modified = false
	return nil
}

type nullWatcher struct{}

func (nullWatcher) AddPaths([]string) error { return nil }
func (nullWatcher) RemovePath(string) error { return nil }
func (nullWatcher) Events() <-chan string { return nil }
func (nullWatcher) Errors() <-chan error { return nil }
func (nullWatcher) Close() error { return nil }

type recordingCloser struct {
	closed []ports.Document
}

func (c *recordingCloser) CloseDocuments(docs []ports.Document, _ bool) {
	c.closed = append(c.closed, docs...)
}

type recordingNotifier struct {
	external [][]string
}

func (n *recordingNotifier) FilesChangedExternally(paths []string) { n.external = append(n.external, paths) }
func (n *recordingNotifier) FilesChangedInternally([]string) {}
func (n *recordingNotifier) DocumentRenamed(ports.Document, string, string) {}
func (n *recordingNotifier) AllDocumentsRenamed(string, string) {}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}
func (nopLogger) Error(error) {}

type fixture struct {
	store    *store.Store
	queue    *reconcile.Queue
	rec      *reconcile.Reconciler
	reload   *mocks.MockReloadPrompter
	removed  *mocks.MockRemovedPrompter
	saveAs   *mocks.MockSaveAsChooser
	differ   *mocks.MockDiffer
	closer   *recordingCloser
	notifier *recordingNotifier
}

func setup(t *testing.T, behavior domain.DefaultBehavior) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		reload:   mocks.NewMockReloadPrompter(ctrl),
		removed:  mocks.NewMockRemovedPrompter(ctrl),
		saveAs:   mocks.NewMockSaveAsChooser(ctrl),
		differ:   mocks.NewMockDiffer(ctrl),
		closer:   &recordingCloser{},
		notifier: &recordingNotifier{},
	}

	log := nopLogger{}
	f.store = store.New(log, f.notifier, nullWatcher{}, nullWatcher{})
	f.queue = reconcile.NewQueue(time.Hour, f.store.IsTracked)

	selection := mocks.NewMockSaveSelectionDialog(ctrl)
	readOnly := mocks.NewMockReadOnlyDialog(ctrl)
	sv := saver.New(f.store, selection, readOnly, f.differ, log, f.queue)

	f.rec = reconcile.New(f.store, f.queue, sv, behavior, reconcile.Prompts{
		Reload:  f.reload,
		Removed: f.removed,
		SaveAs:  f.saveAs,
	}, f.differ, f.closer, f.notifier, log)

	return f
}

// addDoc creates a file with content, opens a fake document on it and
// registers it with the store.
func (f *fixture) addDoc(t *testing.T, path string) *fakeDoc {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))
	doc := &fakeDoc{path: path}
	f.store.AddDocuments([]ports.Document{doc}, true)
	return doc
}

// change rewrites the file with a modification time guaranteed to differ
// from the registered snapshot.
func change(t *testing.T, path string) {
	t.Helper()
	meta, ok := domain.StatMeta(path)
	require.True(t, ok)
	require.NoError(t, os.WriteFile(path, []byte("changed externally"), 0o644))
	require.NoError(t, os.Chtimes(path, time.Now(), meta.ModTime.Add(2*time.Second)))
}

// pass reports the paths as changed and runs one reconciliation pass.
func (f *fixture) pass(t *testing.T, paths ...string) {
	t.Helper()
	for _, path := range paths {
		f.queue.Notify(path)
	}
	f.rec.CheckForReload()
}

func TestReconciler_ReloadUnmodified_ContentChange(t *testing.T) {
	f := setup(t, domain.ReloadUnmodified)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)

	change(t, path)
	f.pass(t, path)

	assert.Equal(t, 1, doc.reloads)
	assert.Equal(t, domain.FlagReload, doc.lastFlag)
	assert.Equal(t, domain.ContentChanged, doc.lastType)
	assert.Empty(t, f.closer.closed)
	assert.Equal(t, [][]string{{path}}, f.notifier.external)
}

func TestReconciler_ReloadUnmodified_Removed(t *testing.T) {
	f := setup(t, domain.ReloadUnmodified)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)

	require.NoError(t, os.Remove(path))
	f.pass(t, path)

	assert.Zero(t, doc.reloads)
	assert.Equal(t, []ports.Document{doc}, f.closer.closed)
}

func TestReconciler_IgnoreAll_AcceptsDiskState(t *testing.T) {
	f := setup(t, domain.IgnoreAll)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)
	doc.modified = true

	change(t, path)
	f.pass(t, path)

	assert.Equal(t, 1, doc.reloads)
	assert.Equal(t, domain.FlagIgnore, doc.lastFlag)
	assert.Empty(t, f.closer.closed)
}

func TestReconciler_PermissionOnly_NoPromptNoReload(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)

	require.NoError(t, os.Chmod(path, 0o444))
	f.pass(t, path)

	assert.Zero(t, doc.reloads)
	assert.Empty(t, f.closer.closed)
}

func TestReconciler_AskContent_ReloadAllCarriesOver(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	docA := f.addDoc(t, pathA)
	docB := f.addDoc(t, pathB)

	change(t, pathA)
	change(t, pathB)

	// Only the first document prompts; the answer covers the rest.
	f.reload.EXPECT().AskReload(pathA, false).Return(domain.ReloadAll)

	f.pass(t, pathA, pathB)

	assert.Equal(t, 1, docA.reloads)
	assert.Equal(t, domain.FlagReload, docA.lastFlag)
	assert.Equal(t, 1, docB.reloads)
	assert.Equal(t, domain.FlagReload, docB.lastFlag)
}

func TestReconciler_AskContent_SkipKeepsDocument(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)
	doc.modified = true

	change(t, path)
	f.reload.EXPECT().AskReload(path, true).Return(domain.SkipCurrent)

	f.pass(t, path)

	assert.Equal(t, 1, doc.reloads)
	assert.Equal(t, domain.FlagIgnore, doc.lastFlag)
	assert.True(t, doc.modified, "unsaved edits survive a skip")
}

func TestReconciler_AskContent_ReloadNoneAndDiff(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	docA := f.addDoc(t, pathA)
	docB := f.addDoc(t, pathB)

	change(t, pathA)
	change(t, pathB)

	f.reload.EXPECT().AskReload(pathA, false).Return(domain.ReloadNoneAndDiff)
	f.differ.EXPECT().DiffModifiedFiles([]string{pathA, pathB})

	f.pass(t, pathA, pathB)

	assert.Equal(t, domain.FlagIgnore, docA.lastFlag)
	assert.Equal(t, domain.FlagIgnore, docB.lastFlag)
}

func TestReconciler_AskContent_CloseCurrent(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)

	change(t, path)
	f.reload.EXPECT().AskReload(path, false).Return(domain.CloseCurrent)

	f.pass(t, path)

	assert.Zero(t, doc.reloads)
	assert.Equal(t, []ports.Document{doc}, f.closer.closed)
}

func TestReconciler_ExpectedChange_NoExternalTrigger(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)

	var triggers []domain.Trigger
	doc.behavior = func(trigger domain.Trigger, _ domain.ChangeType) domain.Behavior {
		triggers = append(triggers, trigger)
		// Self-inflicted changes reload silently.
		if trigger == domain.TriggerInternal {
			return domain.BehaviorSilent
		}
		return domain.BehaviorAsk
	}

	f.store.ExpectChange(path)
	change(t, path)
	// The prompter must never fire: no AskReload expectation is registered.

	f.pass(t, path)

	require.Len(t, triggers, 1)
	assert.Equal(t, domain.TriggerInternal, triggers[0])
	assert.Equal(t, 1, doc.reloads)
	assert.Equal(t, domain.FlagReload, doc.lastFlag)
}

func TestReconciler_UnexpectedChange_IsExternal(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)

	var triggers []domain.Trigger
	doc.behavior = func(trigger domain.Trigger, _ domain.ChangeType) domain.Behavior {
		triggers = append(triggers, trigger)
		return domain.BehaviorSilent
	}

	change(t, path)
	f.pass(t, path)

	require.Len(t, triggers, 1)
	assert.Equal(t, domain.TriggerExternal, triggers[0])
}

func TestReconciler_Removed_SaveRestoresFile(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)
	doc.modified = true

	require.NoError(t, os.Remove(path))
	f.removed.EXPECT().AskRemoved(path).Return(domain.RemovedSave)

	f.pass(t, path)

	assert.Equal(t, []string{path}, doc.saves)
	_, err := os.Stat(path)
	assert.NoError(t, err, "the save wrote the file back")
	assert.Empty(t, f.closer.closed)
}

func TestReconciler_Removed_SaveAsCancelledThenClose(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	path := filepath.Join(t.TempDir(), "a.txt")
	doc := f.addDoc(t, path)
	doc.modified = true

	require.NoError(t, os.Remove(path))

	// Cancelling the save-as dialog re-prompts until the user settles.
	gomock.InOrder(
		f.removed.EXPECT().AskRemoved(path).Return(domain.RemovedSaveAs),
		f.removed.EXPECT().AskRemoved(path).Return(domain.RemovedClose),
	)
	f.saveAs.EXPECT().ChooseSaveAs(doc).Return("")

	f.pass(t, path)

	assert.Empty(t, doc.saves)
	assert.Equal(t, []ports.Document{doc}, f.closer.closed)
}

func TestReconciler_Removed_CloseAllCarriesOver(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.txt")
	pathB := filepath.Join(dir, "b.txt")
	docA := f.addDoc(t, pathA)
	docB := f.addDoc(t, pathB)

	require.NoError(t, os.Remove(pathA))
	require.NoError(t, os.Remove(pathB))

	// One prompt closes everything.
	f.removed.EXPECT().AskRemoved(pathA).Return(domain.RemovedCloseAll)

	f.pass(t, pathA, pathB)

	assert.Equal(t, []ports.Document{docA, docB}, f.closer.closed)
}

func TestReconciler_SymlinkTarget_ReachesBothDocuments(t *testing.T) {
	f := setup(t, domain.ReloadUnmodified)
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("original"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	linkDoc := &fakeDoc{path: link}
	targetDoc := &fakeDoc{path: target}
	f.store.AddDocuments([]ports.Document{linkDoc, targetDoc}, true)

	change(t, target)
	f.pass(t, target)

	assert.Equal(t, 1, linkDoc.reloads, "the link document sees the target change")
	assert.Equal(t, 1, targetDoc.reloads)
}

func TestReconciler_NoPendingChanges_NoPass(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	f.rec.CheckForReload()
	assert.Empty(t, f.notifier.external)
}

func TestReconciler_UntrackedPath_Filtered(t *testing.T) {
	f := setup(t, domain.AlwaysAsk)
	f.queue.Notify(filepath.Join(t.TempDir(), "unknown.txt"))
	assert.True(t, f.queue.Empty())
}
