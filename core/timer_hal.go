package core

// PeriodicTimerDriver is the chip side of the Periodic Scheduler: one
// dedicated hardware timer wired to one interrupt line.
type PeriodicTimerDriver interface {
	// ClockEnabled reports whether the timer's clock gate has ever been
	// turned on. Touching the timer registers before that faults.
	ClockEnabled() bool

	// Arm runs the full configuration sequence: gate the clock, disable the
	// timer, select 32-bit periodic down-count, load reload, clear a pending
	// timeout, arm the timeout interrupt, set priority, enable the IRQ line
	// and start the timer.
	Arm(reload uint32, priority uint8)

	// Acknowledge clears the timeout flag.
	Acknowledge()

	// DisableIRQ removes the timer interrupt from the interrupt controller.
	DisableIRQ()
}
