package core

// Critical is a scoped interrupt mask. Exit restores whatever mask was in
// effect at EnterCritical, so sections nest:
//
//	cs := EnterCritical()
//	defer cs.Exit()
//
// Foreground code only; the tick handler already runs with the timer masked.
type Critical struct {
	saved State
}

// EnterCritical masks interrupts and remembers the previous mask.
func EnterCritical() Critical {
	return Critical{saved: disableInterrupts()}
}

// Exit restores the mask saved by EnterCritical.
func (c Critical) Exit() {
	restoreInterrupts(c.saved)
}

// EnableInterrupts globally unmasks interrupts. Called once all devices of a
// session are configured.
func EnableInterrupts() {
	enableInterrupts()
}
