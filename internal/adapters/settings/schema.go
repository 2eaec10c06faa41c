package settings

// File represents the structure of the docsync settings file.
type File struct {
	Version     string         `yaml:"version"`
	RecentFiles RecentFilesDTO `yaml:"recentFiles"`
	Directories DirectoriesDTO `yaml:"directories"`
}

// RecentFilesDTO is the persisted recent-files group.
type RecentFilesDTO struct {
	Files     []string `yaml:"files"`
	EditorIDs []string `yaml:"editorIds"`
}

// DirectoriesDTO is the persisted directories group.
type DirectoriesDTO struct {
	Projects    string `yaml:"projects"`
	UseProjects bool   `yaml:"useProjects"`
}
