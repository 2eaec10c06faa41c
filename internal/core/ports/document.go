// Package ports defines the interfaces through which the engine talks to its
// collaborators: documents, the file system watch primitive, the modal
// dialogs, and the persisted settings. Implementations live under
// internal/adapters; the engine never depends on a concrete one.
package ports

import "go.trai.ch/docsync/internal/core/domain"

// Document is an editable in-memory representation of an on-disk file.
// Documents are created, owned and destroyed by the embedding application;
// the engine only observes them. Implementations are not required to be
// safe for concurrent use: all calls happen on the engine's owning goroutine.
//
//go:generate mockgen -source=document.go -destination=mocks/mock_document.go -package=mocks
type Document interface {
	// FilePath returns the document's backing file path. Empty for documents
	// that never had one (scratch buffers before their first save).
	FilePath() string

	// SetFilePath changes the backing file path (save-as).
	SetFilePath(path string)

	// IsModified reports whether the document has unsaved edits.
	IsModified() bool

	// IsTemporary reports whether the document has no durable backing file.
	IsTemporary() bool

	// IsFileReadOnly reports whether the backing file lacks write permission.
	IsFileReadOnly() bool

	// CheckPermissions re-reads the backing file's permission bits.
	CheckPermissions()

	// Reload resynchronizes the document with its backing file. FlagIgnore
	// accepts the disk state without re-reading content.
	Reload(flag domain.ReloadFlag, typ domain.ChangeType) error

	// ReloadBehavior returns the document's preference for handling the given
	// kind of change: prompt the user or act silently.
	ReloadBehavior(trigger domain.Trigger, typ domain.ChangeType) domain.Behavior

	// Save writes the document to path, or to its current backing file when
	// path is empty. autoSave marks saves not initiated by the user.
	Save(path string, autoSave bool) error

	// FallbackSaveAsPath suggests a save path for documents without one.
	FallbackSaveAsPath() string
}
