package reconcile

import (
	"errors"

	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/engine/saver"
	"go.trai.ch/docsync/internal/engine/store"
	"go.trai.ch/zerr"
)

// Prompts groups the dialog collaborators a reconciliation pass may need.
type Prompts struct {
	Reload  ports.ReloadPrompter
	Removed ports.RemovedPrompter
	SaveAs  ports.SaveAsChooser
}

// Reconciler drives reconciliation passes: it drains the queue, classifies
// the batch and applies the policy to every affected document.
type Reconciler struct {
	store      *store.Store
	queue      *Queue
	classifier *Classifier
	saver      *saver.Coordinator
	behavior   domain.DefaultBehavior
	prompts    Prompts
	differ     ports.Differ
	closer     ports.DocumentCloser
	notifier   ports.Notifier
	log        ports.Logger
}

// New creates a reconciler.
func New(
	st *store.Store,
	queue *Queue,
	sv *saver.Coordinator,
	behavior domain.DefaultBehavior,
	prompts Prompts,
	differ ports.Differ,
	closer ports.DocumentCloser,
	notifier ports.Notifier,
	log ports.Logger,
) *Reconciler {
	return &Reconciler{
		store:      st,
		queue:      queue,
		classifier: NewClassifier(st, log),
		saver:      sv,
		behavior:   behavior,
		prompts:    prompts,
		differ:     differ,
		closer:     closer,
		notifier:   notifier,
		log:        log,
	}
}

// SetDefaultBehavior changes the global reconciliation policy. Takes effect
// with the next pass.
func (r *Reconciler) SetDefaultBehavior(behavior domain.DefaultBehavior) {
	r.behavior = behavior
}

// CheckForReload runs one reconciliation pass if the queue allows it. The
// pass drains the changed set, emits the batch notification, evaluates every
// affected document and executes the resulting dispositions. Prompts run
// synchronously on the owning goroutine; notifications arriving meanwhile
// accumulate and are caught by the follow-up check scheduled at pass end.
func (r *Reconciler) CheckForReload() {
	if !r.queue.TryBegin() {
		return
	}
	defer r.queue.End()

	// Answers remembered for the rest of this pass only.
	previousReloadAnswer := domain.ReloadCurrent
	previousRemovedAnswer := domain.RemovedSave

	var (
		docsToClose []ports.Document
		saveDocs    []ports.Document
		savePaths   []string
		filesToDiff []string
		reloadErrs  []error
	)

	batch := r.classifier.Classify(r.queue.Drain())

	// Display-only consumers hear about the batch before any per-document
	// state is mutated; emitting later would race them against records the
	// pass has already rewritten.
	r.notifier.FilesChangedExternally(batch.Paths)

	// Resolve the expected paths now; the canonical names can have changed
	// since the change was marked expected.
	expectedKeys := r.store.ExpectedKeys()

	for _, doc := range batch.Documents {
		changed, trigger, typ := r.evaluate(doc, batch, expectedKeys)
		if !changed {
			// Probably a notification suppressed earlier, e.g. by a blocker.
			continue
		}

		// The document's own reactions must not re-trigger classification.
		r.store.Block(doc)

		// Refresh before reloading: the watch is re-registered here and any
		// change events lost in the gap are covered by the reload itself.
		r.store.Refresh(doc)
		doc.CheckPermissions()

		switch decide(r.behavior, doc.ReloadBehavior(trigger, typ), typ, doc.IsModified()) {
		case recheckPermissions:
			// Already done above.

		case reloadDocument:
			r.reload(doc, domain.FlagReload, typ, &reloadErrs)

		case acceptDiskState:
			r.reload(doc, domain.FlagIgnore, typ, &reloadErrs)

		case closeDocument:
			docsToClose = append(docsToClose, doc)

		case askContent:
			switch previousReloadAnswer {
			case domain.ReloadNone, domain.ReloadNoneAndDiff:
				r.reload(doc, domain.FlagIgnore, domain.ContentChanged, &reloadErrs)
			case domain.ReloadAll:
				r.reload(doc, domain.FlagReload, domain.ContentChanged, &reloadErrs)
			default:
				previousReloadAnswer = r.prompts.Reload.AskReload(doc.FilePath(), doc.IsModified())
				switch previousReloadAnswer {
				case domain.ReloadAll, domain.ReloadCurrent:
					r.reload(doc, domain.FlagReload, domain.ContentChanged, &reloadErrs)
				case domain.SkipCurrent, domain.ReloadNone, domain.ReloadNoneAndDiff:
					r.reload(doc, domain.FlagIgnore, domain.ContentChanged, &reloadErrs)
				case domain.CloseCurrent:
					docsToClose = append(docsToClose, doc)
				}
			}
			if previousReloadAnswer == domain.ReloadNoneAndDiff {
				filesToDiff = append(filesToDiff, doc.FilePath())
			}

		case askRemoved:
			for unhandled := true; unhandled; {
				if previousRemovedAnswer != domain.RemovedCloseAll {
					previousRemovedAnswer = r.prompts.Removed.AskRemoved(doc.FilePath())
				}
				switch previousRemovedAnswer {
				case domain.RemovedSave:
					saveDocs = append(saveDocs, doc)
					savePaths = append(savePaths, doc.FilePath())
					unhandled = false
				case domain.RemovedSaveAs:
					if path := r.prompts.SaveAs.ChooseSaveAs(doc); path != "" {
						saveDocs = append(saveDocs, doc)
						savePaths = append(savePaths, path)
						unhandled = false
					}
				case domain.RemovedClose, domain.RemovedCloseAll:
					docsToClose = append(docsToClose, doc)
					unhandled = false
				}
			}
		}

		r.store.Unblock()
	}

	if len(filesToDiff) > 0 && r.differ != nil {
		r.differ.DiffModifiedFiles(filesToDiff)
	}

	// Reload failures are surfaced once, aggregated; they never stop the
	// processing of other documents.
	if len(reloadErrs) > 0 {
		r.log.Error(errors.Join(reloadErrs...))
	}

	// The user already decided; close without individual confirmation.
	if len(docsToClose) > 0 {
		r.closer.CloseDocuments(docsToClose, false)
	}

	for i, doc := range saveDocs {
		if err := r.saver.SaveDocument(doc, savePaths[i]); err != nil {
			r.log.Error(err)
		}
		doc.CheckPermissions()
	}
}

// evaluate determines, over every path key of a document present in the
// batch, whether the document changed at all, the trigger (internal when all
// changed keys match the expected snapshots or are still marked expected) and
// the highest-priority change type.
func (r *Reconciler) evaluate(doc ports.Document, batch *Batch, expectedKeys map[string]struct{}) (changed bool, trigger domain.Trigger, typ domain.ChangeType) {
	trigger = domain.TriggerInternal

	for _, key := range r.store.KeysForDocument(doc) {
		current, ok := batch.Current[key]
		if !ok {
			// Not part of this batch.
			continue
		}

		last, _ := r.store.LastMeta(key, doc)
		expected, _ := r.store.ExpectedMeta(key)

		// Did the file actually change for this document?
		if last.Equal(current) {
			continue
		}
		changed = true

		// Permission bits only; never upgrades the type.
		if last.ModTime.Equal(current.ModTime) {
			continue
		}

		if _, stillExpected := expectedKeys[key]; !current.Equal(expected) && !stillExpected {
			trigger = domain.TriggerExternal
		}

		switch batch.Types[key] {
		case domain.Removed:
			typ = domain.Removed
		case domain.ContentChanged:
			if typ < domain.ContentChanged {
				typ = domain.ContentChanged
			}
		}
	}

	if changed && typ == domain.Unchanged {
		typ = domain.PermissionOnly
	}
	return changed, trigger, typ
}

func (r *Reconciler) reload(doc ports.Document, flag domain.ReloadFlag, typ domain.ChangeType, errs *[]error) {
	if err := doc.Reload(flag, typ); err != nil {
		*errs = append(*errs, zerr.With(zerr.Wrap(err, domain.ErrReloadFailed.Error()), "path", doc.FilePath()))
	}
}
