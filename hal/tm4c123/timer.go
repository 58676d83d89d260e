package tm4c123

import "texas/core"

// Timer5A is the tick source: Timer5 in 32-bit periodic down-count mode,
// interrupting on timeout through IRQ 92.
type Timer5A struct {
	bus    Bus
	sysctl *SysCtl
}

// NewTimer5A returns the driver. Nothing is touched until Arm.
func NewTimer5A(bus Bus, sysctl *SysCtl) *Timer5A {
	return &Timer5A{bus: bus, sysctl: sysctl}
}

// ClockEnabled implements core.PeriodicTimerDriver.
func (t *Timer5A) ClockEnabled() bool {
	return t.sysctl.enabled(sysctlRCGCTIMER, gateTimer5)
}

// Arm implements core.PeriodicTimerDriver. The caller holds the critical
// section.
func (t *Timer5A) Arm(reload uint32, priority uint8) {
	// A timer that never reports ready is still armed: the gate is set and
	// the ready bit is a courtesy on this part.
	_ = t.sysctl.enable(sysctlRCGCTIMER, gateTimer5)

	b := t.bus
	clearBits(b, timer5CTL, timerCTLTAEN)
	b.Store(timer5CFG, timerCFG32Bit)
	b.Store(timer5TAMR, timerTAMRPeriodic)
	b.Store(timer5TAILR, reload)
	b.Store(timer5TAPR, 0)
	b.Store(timer5ICR, timerICRTATOCINT)
	b.Store(timer5IMR, timerIMRTATOIM)
	replaceBits(b, nvicPRI23, uint32(priority)<<nvicPriorityPos, nvicPRI23Mask)
	b.Store(nvicEN2, nvicTimer5ABit)
	setBits(b, timer5CTL, timerCTLTAEN)
}

// Acknowledge implements core.PeriodicTimerDriver.
func (t *Timer5A) Acknowledge() {
	t.bus.Store(timer5ICR, timerICRTATOCINT)
}

// DisableIRQ implements core.PeriodicTimerDriver. The timer keeps counting.
func (t *Timer5A) DisableIRQ() {
	t.bus.Store(nvicDIS2, nvicTimer5ABit)
}

// Reload returns the programmed interval.
func (t *Timer5A) Reload() uint32 {
	return t.bus.Load(timer5TAILR)
}

var _ core.PeriodicTimerDriver = (*Timer5A)(nil)
