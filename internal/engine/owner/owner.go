// Package owner pins mutable engine state to the goroutine that created it.
//
// The engine runs a single-threaded cooperative model: every mutation of the
// file state store and every reconciliation pass must happen on one logical
// owning goroutine. Calling in from anywhere else is a programming error, not
// a recoverable condition, so the check panics instead of locking.
package owner

import (
	"bytes"
	"runtime"
	"strconv"
)

// Check remembers the owning goroutine.
type Check struct {
	id uint64
}

// Capture records the calling goroutine as the owner.
func Capture() Check {
	return Check{id: gid()}
}

// Adopt transfers ownership to the calling goroutine. Intended for the
// hand-off between construction (e.g. inside a dependency graph runner) and
// the goroutine that will actually drive the engine; never call it while the
// previous owner may still be active.
func (c *Check) Adopt() {
	c.id = gid()
}

// Assert panics when called from any goroutine other than the owner.
func (c Check) Assert() {
	if gid() != c.id {
		panic("docsync: engine state accessed from a non-owning goroutine")
	}
}

// gid parses the goroutine ID out of the runtime stack header
// ("goroutine 42 [running]:"). There is no supported API for this; the
// header format has been stable since Go 1.0.
func gid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
