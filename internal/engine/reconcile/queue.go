// Package reconcile turns raw file change notifications into per-document
// reconciliation: a debouncing notification queue, a metadata classifier and
// the policy state machine deciding whether to reload, ignore, close or ask.
package reconcile

import (
	"time"

	"go.trai.ch/docsync/internal/engine/owner"
)

const (
	// DefaultDebounceWindow is how long the queue waits after the first
	// notification before a reconciliation pass starts.
	DefaultDebounceWindow = 200 * time.Millisecond

	// postponeGrace is the delay before a pass is scheduled after the
	// postpone-auto-reload suppression is lifted.
	postponeGrace = 500 * time.Millisecond
)

// Queue debounces raw change notifications into batched reconciliation
// passes and carries the guard flags that keep passes from running at the
// wrong time: while another pass is active lower in the call stack, while the
// application is in the background, while a modal interaction is open, or
// while auto-reload is postponed by a long-running operation.
//
// Notify and the flag mutators are single-owner like the store; only the
// debounce timer callback runs elsewhere, and it does nothing but signal the
// wake channel.
type Queue struct {
	guard   owner.Check
	window  time.Duration
	tracked func(path string) bool

	changed map[string]struct{} // raw paths reported since the last pass
	order   []string            // insertion order of changed

	wake chan struct{}

	busy         bool
	postponed    bool
	inactive     bool
	checkOnFocus bool
	modal        int
}

// NewQueue creates a queue with the given debounce window. tracked filters
// notifications for paths no document watches; it runs on the owning
// goroutine only.
func NewQueue(window time.Duration, tracked func(path string) bool) *Queue {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Queue{
		guard:   owner.Capture(),
		window:  window,
		tracked: tracked,
		changed: make(map[string]struct{}),
		wake:    make(chan struct{}, 1),
	}
}

// Adopt transfers queue ownership to the calling goroutine. Must happen
// before any other call when the queue was constructed elsewhere.
func (q *Queue) Adopt() {
	q.guard.Adopt()
}

// SetWindow changes the debounce window for subsequent bursts. A
// non-positive window restores the default.
func (q *Queue) SetWindow(window time.Duration) {
	q.guard.Assert()

	if window <= 0 {
		window = DefaultDebounceWindow
	}
	q.window = window
}

// C is signalled when a reconciliation pass should be attempted.
func (q *Queue) C() <-chan struct{} {
	return q.wake
}

// Notify records a raw change notification for path. The debounce timer is
// armed only when the changed set was empty, so a burst of notifications
// yields exactly one pass.
func (q *Queue) Notify(path string) {
	q.guard.Assert()

	if q.tracked != nil && !q.tracked(path) {
		return
	}

	wasEmpty := len(q.changed) == 0
	if _, ok := q.changed[path]; !ok {
		q.changed[path] = struct{}{}
		q.order = append(q.order, path)
	}

	if wasEmpty && len(q.changed) > 0 {
		time.AfterFunc(q.window, q.signal)
	}
}

// Drain atomically empties the changed set and returns the raw paths in
// arrival order.
func (q *Queue) Drain() []string {
	q.guard.Assert()

	paths := q.order
	q.changed = make(map[string]struct{})
	q.order = nil
	return paths
}

// Empty reports whether no notifications are pending.
func (q *Queue) Empty() bool {
	return len(q.changed) == 0
}

// TryBegin attempts to start a reconciliation pass. It returns false when the
// pass must not run now: nothing is pending, auto-reload is postponed, the
// application is in the background (the pass is retried on the next focus
// regain), a modal interaction is open, or a pass is already active lower in
// the call stack. A successful TryBegin must be paired with End.
func (q *Queue) TryBegin() bool {
	q.guard.Assert()

	if q.postponed || len(q.changed) == 0 {
		return false
	}
	if q.inactive || q.modal > 0 {
		// Racing with user input; recheck when focus comes back.
		q.checkOnFocus = true
		return false
	}
	if q.busy {
		// A nested arrival during an active pass. The running pass
		// reschedules itself at the end, so nothing to do here.
		return false
	}

	q.busy = true
	return true
}

// End finishes the active pass and schedules a follow-up check to catch
// notifications that arrived while the pass (and its prompts) ran.
func (q *Queue) End() {
	q.guard.Assert()

	q.busy = false
	q.signal()
}

// EnterModal marks a modal interaction as open. Reconciliation passes do not
// start while any modal scope is active; the prompts issued by a running pass
// itself are exempt because the pass already holds the busy flag.
func (q *Queue) EnterModal() {
	q.guard.Assert()

	q.modal++
}

// LeaveModal closes the most recent modal scope.
func (q *Queue) LeaveModal() {
	q.guard.Assert()

	if q.modal > 0 {
		q.modal--
	}
	if q.modal == 0 && q.checkOnFocus {
		q.checkOnFocus = false
		q.signal()
	}
}

// SetActive tells the queue whether the application is in the foreground.
// Regaining focus retries a pass that was deferred while inactive.
func (q *Queue) SetActive(active bool) {
	q.guard.Assert()

	q.inactive = !active
	if active && q.checkOnFocus {
		q.checkOnFocus = false
		q.signal()
	}
}

// SetPostponeAutoReload raises or lowers the global suppression flag. While
// raised, notifications accumulate but no pass is triggered; lowering it
// schedules a pass after a short grace delay.
func (q *Queue) SetPostponeAutoReload(postpone bool) {
	q.guard.Assert()

	q.postponed = postpone
	if !postpone {
		time.AfterFunc(postponeGrace, q.signal)
	}
}

// signal wakes the owner without blocking; a pending wake is sufficient.
func (q *Queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
