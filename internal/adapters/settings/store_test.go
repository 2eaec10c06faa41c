package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docsync/internal/adapters/settings"
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	return settings.New(filepath.Join(t.TempDir(), "settings.yaml"), nopLogger{})
}

func TestStore_WriteRecentFiles_Golden(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.WriteDirectories(ports.DirectoriesState{
		Projects:    "/home/user/projects",
		UseProjects: true,
	}))
	require.NoError(t, s.WriteRecentFiles(ports.RecentFilesState{
		Files:     []string{"/home/user/notes.txt", "/home/user/todo.txt"},
		EditorIDs: []string{"text", ""},
	}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "settings_full", data)
}

func TestStore_ReadMissingFile_ZeroState(t *testing.T) {
	s := newStore(t)

	recent, err := s.ReadRecentFiles()
	require.NoError(t, err)
	assert.Empty(t, recent.Files)
	assert.Empty(t, recent.EditorIDs)

	dirs, err := s.ReadDirectories()
	require.NoError(t, err)
	assert.Empty(t, dirs.Projects)
	assert.False(t, dirs.UseProjects)
}

func TestStore_RecentFilesRoundTrip(t *testing.T) {
	s := newStore(t)

	want := ports.RecentFilesState{
		Files:     []string{"/a.txt", "/b.txt"},
		EditorIDs: []string{"text", "designer"},
	}
	require.NoError(t, s.WriteRecentFiles(want))

	got, err := s.ReadRecentFiles()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_WritePreservesOtherGroups(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.WriteRecentFiles(ports.RecentFilesState{
		Files:     []string{"/a.txt"},
		EditorIDs: []string{"text"},
	}))
	require.NoError(t, s.WriteDirectories(ports.DirectoriesState{
		Projects: "/projects",
	}))

	recent, err := s.ReadRecentFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.txt"}, recent.Files)

	dirs, err := s.ReadDirectories()
	require.NoError(t, err)
	assert.Equal(t, "/projects", dirs.Projects)
}

func TestStore_WriteCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "settings.yaml")
	s := settings.New(path, nopLogger{})

	require.NoError(t, s.WriteDirectories(ports.DirectoriesState{Projects: "/p"}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{ not yaml"), 0o644))
	s := settings.New(path, nopLogger{})

	_, err := s.ReadRecentFiles()
	assert.ErrorContains(t, err, domain.ErrSettingsParseFailed.Error())
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv("DOCSYNC_SETTINGS", "/custom/settings.yaml")
	assert.Equal(t, "/custom/settings.yaml", settings.DefaultPath())
}
