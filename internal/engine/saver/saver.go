// Package saver collects modified documents and writes them to disk:
// duplicate save targets are resolved, read-only conflicts surfaced, and
// failures reported per document without stopping the rest of the batch.
package saver

import (
	"os"

	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/engine/store"
	"go.trai.ch/zerr"
)

// ModalGuard scopes modal interactions so the notification queue defers
// reconciliation passes while a dialog is open.
type ModalGuard interface {
	EnterModal()
	LeaveModal()
}

// Result is the outcome of a batched save operation.
type Result struct {
	// Cancelled is true when the user cancelled the selection or the
	// read-only resolution.
	Cancelled bool
	// AlwaysSave reports the state of the dialog's "always save" checkbox.
	AlwaysSave bool
	// FailedToSave lists the documents that were not saved: every candidate
	// on cancellation, or the individual failures otherwise.
	FailedToSave []ports.Document
}

// Ok reports whether every candidate was saved.
func (r Result) Ok() bool {
	return !r.Cancelled && len(r.FailedToSave) == 0
}

// Err converts the result into an error for callers that only care about
// overall success.
func (r Result) Err() error {
	if r.Cancelled {
		return domain.ErrSaveCancelled
	}
	if len(r.FailedToSave) > 0 {
		return domain.ErrSaveFailed
	}
	return nil
}

// Coordinator performs batched and single-document saves.
type Coordinator struct {
	store     *store.Store
	selection ports.SaveSelectionDialog
	readOnly  ports.ReadOnlyDialog
	differ    ports.Differ
	log       ports.Logger
	modal     ModalGuard
}

// New creates a save coordinator.
func New(
	st *store.Store,
	selection ports.SaveSelectionDialog,
	readOnly ports.ReadOnlyDialog,
	differ ports.Differ,
	log ports.Logger,
	modal ModalGuard,
) *Coordinator {
	return &Coordinator{
		store:     st,
		selection: selection,
		readOnly:  readOnly,
		differ:    differ,
		log:       log,
		modal:     modal,
	}
}

// SaveModified saves the modified, non-temporary documents among docs. With
// silently == true no selection dialog is shown. message and
// alwaysSaveMessage customize the dialog; an empty alwaysSaveMessage hides
// the checkbox.
func (c *Coordinator) SaveModified(docs []ports.Document, message, alwaysSaveMessage string, silently bool) Result {
	candidates := c.collectCandidates(docs)
	if len(candidates) == 0 {
		return Result{}
	}

	toSave := candidates
	var result Result

	if !silently {
		c.enterModal()
		sel := c.selection.Select(candidates, message, alwaysSaveMessage)
		c.leaveModal()

		result.AlwaysSave = sel.AlwaysSave
		if !sel.Accepted {
			if len(sel.Diff) > 0 && c.differ != nil {
				c.differ.DiffModifiedFiles(sel.Diff)
			}
			result.Cancelled = true
			result.FailedToSave = candidates
			return result
		}
		toSave = sel.ToSave
	}

	// Resolve write permission before any save attempt.
	var roDocs []ports.Document
	for _, doc := range toSave {
		if doc.IsFileReadOnly() {
			roDocs = append(roDocs, doc)
		}
	}
	if len(roDocs) > 0 {
		c.enterModal()
		proceed := c.readOnly.Resolve(roDocs)
		c.leaveModal()
		if !proceed {
			result.Cancelled = true
			result.FailedToSave = candidates
			return result
		}
	}

	for _, doc := range toSave {
		if err := c.SaveDocument(doc, ""); err != nil {
			c.log.Error(err)
			result.FailedToSave = append(result.FailedToSave, doc)
		}
	}
	return result
}

// collectCandidates filters docs down to modified, non-temporary documents
// and deduplicates by save target. When two documents would save to the same
// path the one that is not read-only wins.
func (c *Coordinator) collectCandidates(docs []ports.Document) []ports.Document {
	byName := make(map[string]int) // save target -> index into candidates
	var candidates []ports.Document

	for _, doc := range docs {
		if doc == nil || !doc.IsModified() || doc.IsTemporary() {
			continue
		}
		name := doc.FilePath()
		if name == "" {
			name = doc.FallbackSaveAsPath()
		}

		if i, ok := byName[name]; ok {
			if !doc.IsFileReadOnly() {
				candidates[i] = doc
			}
			continue
		}
		byName[name] = len(candidates)
		candidates = append(candidates, doc)
	}
	return candidates
}

// SaveDocument saves a single document to path (its own backing file when
// path is empty). The write is bracketed with expect/unexpect and the
// document's own watch registration is detached for the duration, so the
// engine's own write never classifies as an external change.
func (c *Coordinator) SaveDocument(doc ports.Document, path string) error {
	if doc == nil {
		return domain.ErrDocumentNil
	}

	savePath := path
	if savePath == "" {
		savePath = doc.FilePath()
	}

	// Expecting the change only matters to other documents backed by the
	// same file; the blocker is released after the document is re-attached
	// so the fresh on-disk state is what gets snapshotted.
	blocker := c.store.BlockFileChange(savePath)
	defer blocker.Release()

	hadWatch := c.store.RemoveDocument(doc)
	defer c.store.AddDocuments([]ports.Document{doc}, hadWatch)

	if err := doc.Save(path, false); err != nil {
		if isReadOnlyFile(savePath) {
			return zerr.With(domain.ErrFileReadOnly, "path", savePath)
		}
		return zerr.With(zerr.Wrap(err, "failed to save document"), "path", savePath)
	}
	return nil
}

// isReadOnlyFile reports whether the file exists but cannot be opened for
// writing.
func isReadOnlyFile(path string) bool {
	if path == "" {
		return false
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err == nil {
		f.Close()
		return false
	}
	r, err := os.Open(path)
	if err != nil {
		return false
	}
	r.Close()
	return true
}

func (c *Coordinator) enterModal() {
	if c.modal != nil {
		c.modal.EnterModal()
	}
}

func (c *Coordinator) leaveModal() {
	if c.modal != nil {
		c.modal.LeaveModal()
	}
}
