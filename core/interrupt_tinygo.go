//go:build tinygo

package core

import (
	"device/arm"
	"runtime/interrupt"
)

// State is the saved PRIMASK
type State = interrupt.State

// disableInterrupts disables interrupts and returns the previous state
func disableInterrupts() State {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state State) {
	interrupt.Restore(state)
}

// enableInterrupts clears PRIMASK
func enableInterrupts() {
	arm.Asm("cpsie i")
}

// InterruptsMasked reports whether PRIMASK is set.
func InterruptsMasked() bool {
	state := interrupt.Disable()
	interrupt.Restore(state)
	return state != 0
}
