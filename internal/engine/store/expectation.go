package store

import "go.trai.ch/docsync/internal/core/domain"

// ExpectChange marks any subsequent change to path as expected, so the next
// reconciliation pass classifies it as internal. No-op for empty paths.
func (s *Store) ExpectChange(path string) {
	s.guard.Assert()

	if path == "" {
		return
	}
	s.expectedPaths[path] = struct{}{}
}

// UnexpectChange considers changes to path unexpected again and snapshots the
// current on-disk metadata into the expected state of both the link-path and
// resolved-path records. The snapshot is taken on every call, even when the
// path was never marked expected: classification compares against whatever
// was last recorded here.
func (s *Store) UnexpectChange(path string) {
	s.guard.Assert()

	if path == "" {
		return
	}

	delete(s.expectedPaths, path)

	key := domain.Key(path, domain.KeepLinks)
	s.updateExpectedState(key)

	if resolved := domain.Key(path, domain.ResolveLinks); resolved != key {
		s.updateExpectedState(resolved)
	}
}

func (s *Store) updateExpectedState(key string) {
	if key == "" {
		return
	}
	if rec, ok := s.states[key]; ok {
		meta, _ := domain.StatMeta(rec.watchedPath)
		rec.expected = meta
	}
}

// ExpectedKeys resolves the raw expected paths into normalized keys, link and
// resolved variants included. Resolution happens here rather than in
// ExpectChange because the resolved name can differ by the time the
// reconciliation pass runs.
func (s *Store) ExpectedKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(s.expectedPaths))
	for path := range s.expectedPaths {
		key := domain.Key(path, domain.KeepLinks)
		keys[key] = struct{}{}
		if resolved := domain.Key(path, domain.ResolveLinks); resolved != key {
			keys[resolved] = struct{}{}
		}
	}
	return keys
}

// FileChangeBlocker marks changes to one path as expected for its lifetime.
// Callers defer Release so the unexpect runs on every exit path.
type FileChangeBlocker struct {
	store    *Store
	path     string
	released bool
}

// BlockFileChange marks path as expected and returns the blocker that undoes
// it.
func (s *Store) BlockFileChange(path string) *FileChangeBlocker {
	s.ExpectChange(path)
	return &FileChangeBlocker{store: s, path: path}
}

// Release considers changes to the path unexpected again. Safe to call more
// than once.
func (b *FileChangeBlocker) Release() {
	if b.released {
		return
	}
	b.released = true
	b.store.UnexpectChange(b.path)
}
