package domain

import "path/filepath"

// ResolveMode selects how symbolic links are treated when building a path
// key.
type ResolveMode uint8

const (
	// KeepLinks canonicalizes the path without following symbolic links.
	KeepLinks ResolveMode = iota
	// ResolveLinks additionally follows symbolic links to the target.
	ResolveLinks
)

// Key canonicalizes path into the form used as map key throughout the
// engine: absolute and cleaned, optionally with symbolic links resolved.
// Keys are idempotent: Key(Key(p, m), m) == Key(p, m). An empty path yields
// an empty key.
//
// When the path cannot be made absolute or a link target cannot be resolved
// (e.g. the file does not exist yet) the best available form is returned
// rather than an error; a key must exist even for files that are gone.
func Key(path string, mode ResolveMode) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if mode == ResolveLinks {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}
	}
	return abs
}
