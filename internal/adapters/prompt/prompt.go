// Package prompt provides a non-interactive implementation of the dialog
// ports. Every prompt resolves to a fixed policy answer and is reported
// through the logger, which makes the engine usable headless: in the watch
// command, in scripts and in tests.
package prompt

import (
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
)

// Policy fixes the answer for every prompt kind.
type Policy struct {
	// Reload answers the content-change prompt.
	Reload domain.ReloadAnswer
	// Removed answers the removed-file prompt.
	Removed domain.RemovedAnswer
	// SaveAll answers the save-selection dialog: true saves every candidate,
	// false cancels.
	SaveAll bool
	// ResolveReadOnly answers the read-only dialog.
	ResolveReadOnly bool
}

// DefaultPolicy reloads on content changes and closes removed documents,
// which keeps a headless consumer synchronized with the disk.
func DefaultPolicy() Policy {
	return Policy{
		Reload:          domain.ReloadCurrent,
		Removed:         domain.RemovedClose,
		SaveAll:         true,
		ResolveReadOnly: false,
	}
}

// Headless answers every dialog from a fixed Policy.
type Headless struct {
	policy Policy
	log    ports.Logger
}

var (
	_ ports.SaveSelectionDialog = (*Headless)(nil)
	_ ports.ReadOnlyDialog      = (*Headless)(nil)
	_ ports.ReloadPrompter      = (*Headless)(nil)
	_ ports.RemovedPrompter     = (*Headless)(nil)
	_ ports.SaveAsChooser       = (*Headless)(nil)
)

// New creates a headless dialog set.
func New(policy Policy, log ports.Logger) *Headless {
	return &Headless{policy: policy, log: log}
}

// Select answers the save-selection dialog with either all candidates or a
// cancel, per policy.
func (h *Headless) Select(candidates []ports.Document, message, _ string) ports.SaveSelection {
	if !h.policy.SaveAll {
		h.log.Debug("declining save selection", "candidates", len(candidates))
		return ports.SaveSelection{}
	}
	h.log.Debug("accepting save selection", "candidates", len(candidates), "message", message)
	return ports.SaveSelection{Accepted: true, ToSave: candidates}
}

// Resolve answers the read-only dialog per policy.
func (h *Headless) Resolve(documents []ports.Document) bool {
	h.log.Debug("read-only documents in save set", "count", len(documents), "proceed", h.policy.ResolveReadOnly)
	return h.policy.ResolveReadOnly
}

// AskReload answers the content-change prompt per policy.
func (h *Headless) AskReload(path string, modified bool) domain.ReloadAnswer {
	answer := h.policy.Reload
	if modified && answer == domain.ReloadCurrent {
		// Never drop unsaved edits without a user present.
		answer = domain.SkipCurrent
	}
	h.log.Info("file changed on disk", "path", path, "modified", modified, "answer", answer.String())
	return answer
}

// AskRemoved answers the removed-file prompt per policy.
func (h *Headless) AskRemoved(path string) domain.RemovedAnswer {
	h.log.Info("file removed on disk", "path", path, "answer", h.policy.Removed.String())
	return h.policy.Removed
}

// ChooseSaveAs cannot pick a new path without a user; it falls back to the
// document's own suggestion.
func (h *Headless) ChooseSaveAs(doc ports.Document) string {
	return doc.FallbackSaveAsPath()
}
