package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/docsync/internal/core/domain"
)

func TestKey_Empty(t *testing.T) {
	assert.Empty(t, domain.Key("", domain.KeepLinks))
	assert.Empty(t, domain.Key("", domain.ResolveLinks))
}

func TestKey_Absolute(t *testing.T) {
	key := domain.Key("some/relative/file.txt", domain.KeepLinks)
	assert.True(t, filepath.IsAbs(key))
}

func TestKey_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "..", "b.txt")

	key := domain.Key(path, domain.KeepLinks)
	assert.Equal(t, key, domain.Key(key, domain.KeepLinks))

	resolved := domain.Key(path, domain.ResolveLinks)
	assert.Equal(t, resolved, domain.Key(resolved, domain.ResolveLinks))
}

func TestKey_CleansDotDot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "..", "file.txt")
	assert.Equal(t, filepath.Join(dir, "file.txt"), domain.Key(path, domain.KeepLinks))
}

func TestKey_ResolveLinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink(target, link))

	assert.Equal(t, domain.Key(link, domain.KeepLinks), domain.Key(link, domain.KeepLinks))
	assert.Equal(t, domain.Key(target, domain.ResolveLinks), domain.Key(link, domain.ResolveLinks))
	assert.NotEqual(t, domain.Key(link, domain.KeepLinks), domain.Key(link, domain.ResolveLinks))
}

func TestKey_ResolveLinksMissingFile(t *testing.T) {
	// A key must exist even for files that are gone.
	path := filepath.Join(t.TempDir(), "missing.txt")
	assert.Equal(t, path, domain.Key(path, domain.ResolveLinks))
}

func TestStatMeta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	meta, ok := domain.StatMeta(path)
	assert.False(t, ok)
	assert.True(t, meta.IsZero())

	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
	meta, ok = domain.StatMeta(path)
	require.True(t, ok)
	assert.False(t, meta.IsZero())
	assert.Equal(t, os.FileMode(0o644), meta.Perm)
}

func TestFileMeta_Equal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	a, ok := domain.StatMeta(path)
	require.True(t, ok)
	b, ok := domain.StatMeta(path)
	require.True(t, ok)
	assert.True(t, a.Equal(b))

	require.NoError(t, os.Chmod(path, 0o444))
	c, ok := domain.StatMeta(path)
	require.True(t, ok)
	assert.False(t, a.Equal(c))
	assert.True(t, a.ModTime.Equal(c.ModTime))
}

func TestChangeType_Ordering(t *testing.T) {
	// The classifier picks the highest-priority type with a comparison.
	assert.Less(t, domain.Unchanged, domain.PermissionOnly)
	assert.Less(t, domain.PermissionOnly, domain.ContentChanged)
	assert.Less(t, domain.ContentChanged, domain.Removed)
}

func TestReloadAnswer_AppliesToAll(t *testing.T) {
	assert.True(t, domain.ReloadAll.AppliesToAll())
	assert.True(t, domain.ReloadNone.AppliesToAll())
	assert.True(t, domain.ReloadNoneAndDiff.AppliesToAll())
	assert.False(t, domain.ReloadCurrent.AppliesToAll())
	assert.False(t, domain.SkipCurrent.AppliesToAll())
	assert.False(t, domain.CloseCurrent.AppliesToAll())
}
