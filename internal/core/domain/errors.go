package domain

import "go.trai.ch/zerr"

var (
	// ErrDocumentNil is returned when a nil document is passed to the engine.
	ErrDocumentNil = zerr.New("document is nil")

	// ErrReloadFailed is returned when a document's reload call fails and the
	// document reported no message of its own.
	ErrReloadFailed = zerr.New("cannot reload document")

	// ErrSaveFailed is returned when a document's save call fails.
	ErrSaveFailed = zerr.New("failed to save document")

	// ErrFileReadOnly is returned when a save failed because the backing file
	// is not writable.
	ErrFileReadOnly = zerr.New("file is read-only")

	// ErrSaveCancelled is returned when the user cancelled a save interaction.
	ErrSaveCancelled = zerr.New("save cancelled by user")

	// ErrWatchFailed is returned when paths cannot be registered with the
	// file system watch primitive.
	ErrWatchFailed = zerr.New("failed to watch paths")

	// ErrSettingsReadFailed is returned when the persisted settings cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings")

	// ErrSettingsParseFailed is returned when the persisted settings cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings")

	// ErrSettingsWriteFailed is returned when the persisted settings cannot be written.
	ErrSettingsWriteFailed = zerr.New("failed to write settings")
)
