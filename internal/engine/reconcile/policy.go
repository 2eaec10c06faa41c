package reconcile

import "go.trai.ch/docsync/internal/core/domain"

// disposition is what the policy decided to do with one document.
type disposition uint8

const (
	// recheckPermissions: only permission bits changed; no reload, no prompt.
	recheckPermissions disposition = iota
	// reloadDocument: silently re-read the file content.
	reloadDocument
	// acceptDiskState: take the disk state as authoritative without
	// re-reading content into the document.
	acceptDiskState
	// closeDocument: queue the document for the batched close.
	closeDocument
	// askContent: prompt the user about a content change.
	askContent
	// askRemoved: prompt the user about a removed backing file.
	askRemoved
)

// String returns a human-readable representation of the disposition.
func (d disposition) String() string {
	switch d {
	case recheckPermissions:
		return "recheck-permissions"
	case reloadDocument:
		return "reload"
	case acceptDiskState:
		return "accept-disk"
	case closeDocument:
		return "close"
	case askContent:
		return "ask-content"
	case askRemoved:
		return "ask-removed"
	default:
		return "unknown"
	}
}

// decide evaluates the reconciliation decision table for one document. The
// branch order is significant: the global default behavior takes precedence
// over the document's own silent preference, which in turn short-circuits the
// prompts.
func decide(def domain.DefaultBehavior, docPref domain.Behavior, typ domain.ChangeType, modified bool) disposition {
	switch {
	case typ == domain.PermissionOnly:
		return recheckPermissions
	case def == domain.ReloadUnmodified && typ == domain.ContentChanged && !modified:
		return reloadDocument
	case def == domain.ReloadUnmodified && typ == domain.Removed && !modified:
		return closeDocument
	case def == domain.IgnoreAll:
		return acceptDiskState
	case docPref == domain.BehaviorSilent:
		if typ == domain.Removed {
			return closeDocument
		}
		return reloadDocument
	case typ == domain.ContentChanged:
		return askContent
	default:
		return askRemoved
	}
}
