// Package settings persists the engine's durable state in a YAML file.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const currentVersion = "1"

var _ ports.SettingsStore = (*Store)(nil)

// Store implements ports.SettingsStore on a single YAML file. Reads of a
// missing file return zero state; writes create the parent directory and
// rewrite the whole file.
type Store struct {
	path string
	log  ports.Logger
}

// New creates a store backed by the file at path.
func New(path string, log ports.Logger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) read() (File, error) {
	var file File
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return file, nil
		}
		return file, zerr.With(zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()), "path", s.path)
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, zerr.With(zerr.Wrap(err, domain.ErrSettingsParseFailed.Error()), "path", s.path)
	}
	return file, nil
}

func (s *Store) write(file File) error {
	file.Version = currentVersion
	data, err := yaml.Marshal(file)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error())
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", s.path)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSettingsWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// ReadRecentFiles loads the recent-files group.
func (s *Store) ReadRecentFiles() (ports.RecentFilesState, error) {
	file, err := s.read()
	if err != nil {
		return ports.RecentFilesState{}, err
	}
	return ports.RecentFilesState{
		Files:     file.RecentFiles.Files,
		EditorIDs: file.RecentFiles.EditorIDs,
	}, nil
}

// WriteRecentFiles stores the recent-files group, preserving other groups.
func (s *Store) WriteRecentFiles(state ports.RecentFilesState) error {
	file, err := s.read()
	if err != nil {
		return err
	}
	file.RecentFiles = RecentFilesDTO{
		Files:     state.Files,
		EditorIDs: state.EditorIDs,
	}
	return s.write(file)
}

// ReadDirectories loads the directories group.
func (s *Store) ReadDirectories() (ports.DirectoriesState, error) {
	file, err := s.read()
	if err != nil {
		return ports.DirectoriesState{}, err
	}
	return ports.DirectoriesState{
		Projects:    file.Directories.Projects,
		UseProjects: file.Directories.UseProjects,
	}, nil
}

// WriteDirectories stores the directories group, preserving other groups.
func (s *Store) WriteDirectories(state ports.DirectoriesState) error {
	file, err := s.read()
	if err != nil {
		return err
	}
	file.Directories = DirectoriesDTO{
		Projects:    state.Projects,
		UseProjects: state.UseProjects,
	}
	return s.write(file)
}
