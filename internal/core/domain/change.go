// Package domain holds the engine's pure types: change classification,
// reconciliation policy values, file state snapshots and path canonicalization.
package domain

// ChangeType classifies what happened to a watched file. The values are
// ordered by severity so the highest-priority type of a burst can be picked
// with a plain comparison.
type ChangeType uint8

const (
	// Unchanged means no relevant difference was observed.
	Unchanged ChangeType = iota
	// PermissionOnly means only the permission bits differ.
	PermissionOnly
	// ContentChanged means the modification time moved, so the content is
	// assumed to differ.
	ContentChanged
	// Removed means the file no longer exists.
	Removed
)

// String returns a human-readable representation of the change type.
func (t ChangeType) String() string {
	switch t {
	case Unchanged:
		return "unchanged"
	case PermissionOnly:
		return "permission-only"
	case ContentChanged:
		return "content-changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Trigger records whether a change was made by the application itself or by
// something outside of it.
type Trigger uint8

const (
	// TriggerInternal marks a self-inflicted change.
	TriggerInternal Trigger = iota
	// TriggerExternal marks a change made outside the application.
	TriggerExternal
)

// String returns a human-readable representation of the trigger.
func (t Trigger) String() string {
	if t == TriggerExternal {
		return "external"
	}
	return "internal"
}

// ReloadFlag tells a document how to resynchronize with its backing file.
type ReloadFlag uint8

const (
	// FlagReload re-reads the content from disk.
	FlagReload ReloadFlag = iota
	// FlagIgnore accepts the disk state without re-reading content.
	FlagIgnore
)

// Behavior is a document's own preference for handling a kind of change.
type Behavior uint8

const (
	// BehaviorAsk prompts the user.
	BehaviorAsk Behavior = iota
	// BehaviorSilent reloads or closes without asking.
	BehaviorSilent
)

// DefaultBehavior is the global reconciliation policy.
type DefaultBehavior uint8

const (
	// AlwaysAsk prompts for every external change.
	AlwaysAsk DefaultBehavior = iota
	// ReloadUnmodified silently reloads documents without unsaved edits and
	// closes removed unmodified documents; modified documents still prompt.
	ReloadUnmodified
	// IgnoreAll accepts the disk state for every change without prompting.
	// Unsaved edits stay in memory.
	IgnoreAll
)

// String returns a human-readable representation of the default behavior.
func (b DefaultBehavior) String() string {
	switch b {
	case ReloadUnmodified:
		return "reload-unmodified"
	case IgnoreAll:
		return "ignore-all"
	default:
		return "always-ask"
	}
}

// ReloadAnswer is the user's choice in the content-change prompt.
type ReloadAnswer uint8

const (
	// ReloadCurrent reloads the prompted document only.
	ReloadCurrent ReloadAnswer = iota
	// ReloadAll reloads the prompted document and every later one in the
	// same pass without further prompts.
	ReloadAll
	// SkipCurrent keeps the in-memory state of the prompted document only.
	SkipCurrent
	// ReloadNone keeps the in-memory state of the prompted document and
	// every later one in the same pass without further prompts.
	ReloadNone
	// ReloadNoneAndDiff is ReloadNone plus a diff of every kept document at
	// the end of the pass.
	ReloadNoneAndDiff
	// CloseCurrent closes the prompted document.
	CloseCurrent
)

// AppliesToAll reports whether the answer carries over to the remaining
// documents of the same reconciliation pass.
func (a ReloadAnswer) AppliesToAll() bool {
	return a == ReloadAll || a == ReloadNone || a == ReloadNoneAndDiff
}

// String returns a human-readable representation of the reload answer.
func (a ReloadAnswer) String() string {
	switch a {
	case ReloadCurrent:
		return "reload"
	case ReloadAll:
		return "reload-all"
	case SkipCurrent:
		return "skip"
	case ReloadNone:
		return "reload-none"
	case ReloadNoneAndDiff:
		return "reload-none-and-diff"
	case CloseCurrent:
		return "close"
	default:
		return "unknown"
	}
}

// RemovedAnswer is the user's choice in the removed-file prompt.
type RemovedAnswer uint8

const (
	// RemovedSave writes the document back to its old path.
	RemovedSave RemovedAnswer = iota
	// RemovedSaveAs asks for a new path and writes the document there.
	RemovedSaveAs
	// RemovedClose closes the prompted document.
	RemovedClose
	// RemovedCloseAll closes the prompted document and every later removed
	// one in the same pass without further prompts.
	RemovedCloseAll
)

// String returns a human-readable representation of the removed answer.
func (a RemovedAnswer) String() string {
	switch a {
	case RemovedSave:
		return "save"
	case RemovedSaveAs:
		return "save-as"
	case RemovedClose:
		return "close"
	case RemovedCloseAll:
		return "close-all"
	default:
		return "unknown"
	}
}
