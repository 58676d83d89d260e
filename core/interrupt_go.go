//go:build !tinygo

package core

import "sync/atomic"

// State is the saved interrupt mask. On regular Go it is a simulated PRIMASK
// so tests and the simulator can tell foreground code from critical sections.
type State uint32

var primask atomic.Uint32

// disableInterrupts masks interrupts and returns the previous state
func disableInterrupts() State {
	return State(primask.Swap(1))
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state State) {
	primask.Store(uint32(state))
}

// enableInterrupts clears the mask
func enableInterrupts() {
	primask.Store(0)
}

// InterruptsMasked reports whether the simulated mask is set.
func InterruptsMasked() bool {
	return primask.Load() != 0
}
