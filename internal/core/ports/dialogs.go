package ports

import "go.trai.ch/docsync/internal/core/domain"

// SaveSelection is the structured result of the save-selection dialog.
type SaveSelection struct {
	// Accepted is false when the user cancelled the dialog.
	Accepted bool
	// ToSave is the subset of candidates the user chose to save.
	ToSave []Document
	// AlwaysSave reports the state of the "always save before ..." checkbox.
	AlwaysSave bool
	// Diff lists paths the user asked to diff instead of saving.
	Diff []string
}

// SaveSelectionDialog asks the user which of the modified candidate documents
// should be saved.
//
// Dialogs are modal from the engine's perspective: the call blocks the owning
// goroutine while the surrounding environment keeps delivering file change
// notifications, which accumulate until the current reconciliation pass ends.
//
//go:generate mockgen -source=dialogs.go -destination=mocks/mock_dialogs.go -package=mocks
type SaveSelectionDialog interface {
	Select(candidates []Document, message, alwaysSaveMessage string) SaveSelection
}

// ReadOnlyDialog offers to resolve the read-only status of files about to be
// saved. It returns false when the user cancelled, which aborts the whole
// save operation.
type ReadOnlyDialog interface {
	Resolve(documents []Document) (proceed bool)
}

// ReloadPrompter asks how to handle an external content change to a document.
type ReloadPrompter interface {
	AskReload(path string, modified bool) domain.ReloadAnswer
}

// RemovedPrompter asks how to handle the removal of a document's backing file.
type RemovedPrompter interface {
	AskRemoved(path string) domain.RemovedAnswer
}

// SaveAsChooser asks for a new save path for a document. An empty result
// means the user cancelled.
type SaveAsChooser interface {
	ChooseSaveAs(doc Document) string
}
