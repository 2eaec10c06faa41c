package reconcile

import (
	"go.trai.ch/docsync/internal/core/domain"
	"go.trai.ch/docsync/internal/core/ports"
	"go.trai.ch/docsync/internal/engine/store"
)

// Batch is the classified result of one drained changed set.
type Batch struct {
	// Paths are the raw paths as reported by the watch primitive.
	Paths []string
	// Current maps each path key to the metadata captured at pass start.
	Current map[string]domain.FileMeta
	// Types maps each path key to its provisional classification: Removed
	// for missing files, ContentChanged otherwise. Permission-only changes
	// are disambiguated later against the per-document snapshots.
	Types map[string]domain.ChangeType
	// Documents are all documents interested in any key of this batch, in
	// registration order.
	Documents []ports.Document
}

// Classifier captures current metadata for a batch of changed paths and
// resolves which documents are affected.
type Classifier struct {
	store *store.Store
	log   ports.Logger
}

// NewClassifier creates a classifier over the given store.
func NewClassifier(st *store.Store, log ports.Logger) *Classifier {
	return &Classifier{store: st, log: log}
}

// Classify stats every reported path and builds the batch for the policy.
func (c *Classifier) Classify(paths []string) *Batch {
	batch := &Batch{
		Paths:   paths,
		Current: make(map[string]domain.FileMeta, len(paths)),
		Types:   make(map[string]domain.ChangeType, len(paths)),
	}

	seen := make(map[ports.Document]struct{})
	for _, path := range paths {
		key := domain.Key(path, domain.KeepLinks)
		c.log.Debug("handling file change", "path", path, "key", key)

		meta, exists := domain.StatMeta(path)
		if !exists {
			c.log.Debug("file was removed", "path", path)
			batch.Types[key] = domain.Removed
		} else {
			c.log.Debug("file was modified", "path", path, "modtime", meta.ModTime, "perm", meta.Perm)
			batch.Types[key] = domain.ContentChanged
		}
		batch.Current[key] = meta

		for _, doc := range c.store.DocumentsForKey(key) {
			if _, ok := seen[doc]; ok {
				continue
			}
			seen[doc] = struct{}{}
			batch.Documents = append(batch.Documents, doc)
		}
	}

	return batch
}
