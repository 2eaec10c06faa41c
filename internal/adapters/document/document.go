// Package document provides a file-backed implementation of the document
// port, used by the watch command and as a building block for embedders that
// do not bring their own document type.
package document

import (
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Document = (*File)(nil)

// File is an in-memory copy of an on-disk file. The loaded content is
// fingerprinted so a reload can report whether the content actually differs
// from what is held in memory.
type File struct {
	path      string
	content   []byte
	sum       uint64
	modified  bool
	temporary bool
	readOnly  bool
	behavior  domain.Behavior
}

// Open loads the file at path into a new document.
func Open(path string) (*File, error) {
	f := &File{path: path, behavior: domain.BehaviorAsk}
	if err := f.load(); err != nil {
		return nil, err
	}
	f.CheckPermissions()
	return f, nil
}

// NewTemporary creates a document without a durable backing file. fallback is
// suggested when the document is first saved.
func NewTemporary(fallback string) *File {
	return &File{path: fallback, temporary: true, behavior: domain.BehaviorAsk}
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReloadFailed.Error()), "path", f.path)
	}
	f.content = data
	f.sum = xxhash.Sum64(data)
	f.modified = false
	return nil
}

// FilePath returns the backing file path.
func (f *File) FilePath() string {
	if f.temporary {
		return ""
	}
	return f.path
}

// SetFilePath changes the backing file path and makes the document durable.
func (f *File) SetFilePath(path string) {
	f.path = path
	f.temporary = false
}

// Content returns the in-memory content.
func (f *File) Content() []byte {
	return f.content
}

// SetContent replaces the in-memory content and marks the document modified.
func (f *File) SetContent(data []byte) {
	f.content = data
	f.modified = true
}

// Fingerprint returns the hash of the content as of the last load or save.
func (f *File) Fingerprint() uint64 {
	return f.sum
}

// IsModified reports whether the document has unsaved edits.
func (f *File) IsModified() bool {
	return f.modified
}

// IsTemporary reports whether the document has no durable backing file.
func (f *File) IsTemporary() bool {
	return f.temporary
}

// IsFileReadOnly reports the permission state as of the last check.
func (f *File) IsFileReadOnly() bool {
	if f.temporary {
		return false
	}
	return f.readOnly
}

// CheckPermissions re-reads the backing file's permission bits.
func (f *File) CheckPermissions() {
	if f.temporary {
		f.readOnly = false
		return
	}
	meta, ok := domain.StatMeta(f.path)
	if !ok {
		f.readOnly = false
		return
	}
	f.readOnly = meta.Perm&0o200 == 0
}

// Reload resynchronizes the document with its backing file. With FlagIgnore
// the disk state is accepted without touching the in-memory content; the
// document then counts as modified relative to disk.
func (f *File) Reload(flag domain.ReloadFlag, typ domain.ChangeType) error {
	if flag == domain.FlagIgnore {
		if typ != domain.PermissionOnly {
			f.modified = true
		}
		return nil
	}
	if typ == domain.PermissionOnly {
		f.CheckPermissions()
		return nil
	}
	return f.load()
}

// ReloadBehavior returns the configured preference. Permission-only changes
// and self-inflicted content changes to an unmodified document are always
// handled silently.
func (f *File) ReloadBehavior(trigger domain.Trigger, typ domain.ChangeType) domain.Behavior {
	if typ == domain.PermissionOnly {
		return domain.BehaviorSilent
	}
	if trigger == domain.TriggerInternal && typ == domain.ContentChanged && !f.modified {
		return domain.BehaviorSilent
	}
	return f.behavior
}

// SetReloadBehavior configures whether external changes prompt or are
// handled silently.
func (f *File) SetReloadBehavior(behavior domain.Behavior) {
	f.behavior = behavior
}

// Save writes the in-memory content to path, or to the backing file when
// path is empty.
func (f *File) Save(path string, autoSave bool) error {
	target := path
	if target == "" {
		target = f.path
	}
	if err := os.WriteFile(target, f.content, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveFailed.Error()), "path", target)
	}
	if autoSave {
		return nil
	}
	f.path = target
	f.temporary = false
	f.sum = xxhash.Sum64(f.content)
	f.modified = false
	f.CheckPermissions()
	return nil
}

// FallbackSaveAsPath suggests a save path for temporary documents.
func (f *File) FallbackSaveAsPath() string {
	return f.path
}
