package domain

import (
	"io/fs"
	"os"
	"time"
)

// FileMeta is the snapshot of a file's externally observable state: the
// modification time and the permission bits. Two snapshots being equal means
// the file did not change in any way the engine reacts to.
type FileMeta struct {
	ModTime time.Time
	Perm    fs.FileMode
}

// Equal reports whether both snapshots describe the same state.
func (m FileMeta) Equal(other FileMeta) bool {
	return m.ModTime.Equal(other.ModTime) && m.Perm == other.Perm
}

// IsZero reports whether the snapshot is empty, which stands for a
// non-existing file.
func (m FileMeta) IsZero() bool {
	return m.ModTime.IsZero() && m.Perm == 0
}

// StatMeta snapshots the file at path. ok is false when the file does not
// exist or cannot be statted; the returned snapshot is then zero.
func StatMeta(path string) (FileMeta, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return FileMeta{}, false
	}
	return FileMeta{
		ModTime: info.ModTime(),
		Perm:    info.Mode().Perm(),
	}, true
}

// RecentFile is one entry of the recent-files list.
type RecentFile struct {
	Path     string
	EditorID string
}
