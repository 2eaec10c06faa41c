package ports

// Differ hands a set of file paths to an external diff-against-disk action.
//
//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks
type Differ interface {
	DiffModifiedFiles(paths []string)
}

// DocumentCloser closes documents on behalf of the engine. The engine passes
// askConfirmation == false for batched closes where the user already decided.
type DocumentCloser interface {
	CloseDocuments(docs []Document, askConfirmation bool)
}

// Notifier receives the engine's outward-facing events. The embedding
// application fans them out to interested listeners.
type Notifier interface {
	// FilesChangedExternally is emitted once per reconciliation pass with the
	// raw changed paths, before any per-document reconciliation happens.
	FilesChangedExternally(paths []string)

	// FilesChangedInternally is emitted for changes the application made
	// itself and wants display-only consumers to pick up.
	FilesChangedInternally(paths []string)

	// DocumentRenamed is emitted once per document affected by a rename.
	DocumentRenamed(doc Document, from, to string)

	// AllDocumentsRenamed is emitted once per rename batch.
	AllDocumentsRenamed(from, to string)
}
