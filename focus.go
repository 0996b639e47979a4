package padstream

import "sync/atomic"

// focusGate is the process-wide enable flag consulted only by the
// Normalizer (component F). It defaults to enabled so an application that
// never touches focus at all still receives events.
var focusGate atomic.Bool

func init() {
	focusGate.Store(true)
}

// Focus re-enables abstract event emission. Call it when the host window
// (re-)gains input focus.
func Focus() {
	focusGate.Store(true)
}

// Unfocus disables abstract event emission without stopping the underlying
// raw-record drain: controllers keep reading from the OS so the kernel
// input buffer never backs up, they just stop turning records into events.
func Unfocus() {
	focusGate.Store(false)
}

// Focused reports the current state of the focus gate.
func Focused() bool {
	return focusGate.Load()
}
