package ports

// RecentFilesState is the persisted shape of the recent-files list: two
// parallel ordered lists, most recent first.
type RecentFilesState struct {
	Files     []string
	EditorIDs []string
}

// DirectoriesState is the persisted shape of the directories group.
type DirectoriesState struct {
	Projects    string
	UseProjects bool
}

// SettingsStore persists the engine's small bits of durable state.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsStore interface {
	ReadRecentFiles() (RecentFilesState, error)
	WriteRecentFiles(state RecentFilesState) error
	ReadDirectories() (DirectoriesState, error)
	WriteDirectories(state DirectoriesState) error
}
