//go:build !tinygo

package tm4c123

import (
	"texas/core"
	"texas/protocol"
)

// Write is one store seen by a SimBus.
type Write struct {
	Addr  uintptr
	Value uint32
}

// SimBus is a register file that behaves enough like the part to run the
// firmware on a host:
//
//   - peripheral-ready registers follow their clock gates, and the PLL locks
//     once powered up
//   - touching a gated-off peripheral counts a fault and has no effect
//   - Timer5 counts down in bus cycles, raises its timeout flag and delivers
//     IRQ 92 to the installed handler when unmasked
//   - UART0 queues data into a 16-byte FIFO drained at the programmed baud;
//     a write into a full FIFO is lost and counted
//   - each read of the ADC1 sequencer 3 FIFO takes one conversion from the
//     analog input and returns the running average over the configured
//     hardware averaging window
//
// Time only moves in Advance. A SimBus is not safe for concurrent use.
type SimBus struct {
	regs   map[uintptr]uint32
	writes []Write
	faults int

	now uint64

	// PLL and clock gates
	stallReady bool
	stallPLL   bool

	// Timer5A and NVIC
	timerLeft  uint64
	timerRIS   uint32
	nvicEN2    uint32
	handler    func()
	depth      int
	maxDepth   int
	deliveries int
	unacked    int

	// UART0
	txFIFO   *protocol.ByteFIFO
	txCycles uint64
	line     []byte
	overruns int

	// ADC1
	analog  func(now uint64) uint16
	window  [1 << 6]uint16
	windowN int
	windowI int

	// GPIO
	inputs [core.NumPorts]uint8
}

// NewSimBus returns a simulated part in its reset state.
func NewSimBus() *SimBus {
	s := &SimBus{
		regs:   make(map[uintptr]uint32),
		txFIFO: protocol.NewByteFIFO(uartTxFIFODepth),
	}
	s.regs[uart0CTL] = uartCTLReset
	return s
}

// Load implements Bus.
func (s *SimBus) Load(addr uintptr) uint32 {
	if !s.accessible(addr) {
		s.faults++
		return 0
	}

	switch {
	case addr == sysctlRIS:
		if !s.stallPLL && s.regs[sysctlRCC2]&rcc2PWRDN2 == 0 && s.regs[sysctlRCC2]&rcc2USERCC2 != 0 {
			return risPLLLRIS
		}
		return 0
	case addr == sysctlPRTIMER, addr == sysctlPRGPIO, addr == sysctlPRUART, addr == sysctlPRADC:
		if s.stallReady {
			return 0
		}
		return s.regs[addr-sysctlPROffset]
	case addr == nvicEN2, addr == nvicDIS2:
		return s.nvicEN2
	case addr == timer5RIS:
		return s.timerRIS
	case addr == uart0FR:
		var fr uint32
		if s.txFIFO.Full() {
			fr |= uartFRTXFF
		}
		if s.txFIFO.Empty() {
			fr |= uartFRTXFE
		}
		return fr
	case addr == adc1SSFIFO3:
		return s.convert()
	}

	if p, off, ok := gpioPort(addr); ok && off < gpioDIR {
		return uint32(s.inputs[p] & uint8(off>>2))
	}
	return s.regs[addr]
}

// Store implements Bus.
func (s *SimBus) Store(addr uintptr, value uint32) {
	s.writes = append(s.writes, Write{Addr: addr, Value: value})
	if !s.accessible(addr) {
		s.faults++
		return
	}

	switch addr {
	case nvicEN2:
		s.nvicEN2 |= value
		return
	case nvicDIS2:
		s.nvicEN2 &^= value
		return
	case timer5ICR:
		s.timerRIS &^= value
		return
	case timer5CTL:
		if value&timerCTLTAEN != 0 && s.regs[timer5CTL]&timerCTLTAEN == 0 {
			s.timerLeft = uint64(s.regs[timer5TAILR]) + 1
		}
	case uart0DR:
		if s.regs[uart0CTL]&uartCTLUARTEN != 0 && !s.txFIFO.Push(byte(value)) {
			s.overruns++
		}
		return
	}

	if _, off, ok := gpioPort(addr); ok && off < gpioDIR {
		return
	}
	s.regs[addr] = value
}

// accessible reports whether addr belongs to a peripheral whose clock gate is
// on. System control and the NVIC are always reachable.
func (s *SimBus) accessible(addr uintptr) bool {
	switch {
	case addr >= timer5Base && addr < timer5End:
		return s.regs[sysctlRCGCTIMER]&gateTimer5 != 0
	case addr >= uart0Base && addr < uart0End:
		return s.regs[sysctlRCGCUART]&gateUART0 != 0
	case addr >= adc1Base && addr < adc1End:
		return s.regs[sysctlRCGCADC]&gateADC1 != 0
	}
	if p, _, ok := gpioPort(addr); ok {
		return s.regs[sysctlRCGCGPIO]&(1<<p) != 0
	}
	return true
}

func gpioPort(addr uintptr) (core.Port, uintptr, bool) {
	for p, base := range gpioBase {
		if addr >= base && addr < base+gpioEnd {
			return core.Port(p), addr - base, true
		}
	}
	return 0, 0, false
}

// Advance runs the part for cycles bus cycles, delivering every timer
// interrupt that falls inside the window.
func (s *SimBus) Advance(cycles uint64) {
	for cycles > 0 {
		running := s.timerRunning()
		if running && s.timerLeft == 0 {
			s.timerLeft = uint64(s.regs[timer5TAILR]) + 1
		}
		step := cycles
		if running && s.timerLeft < step {
			step = s.timerLeft
		}

		s.drainUART(step)
		s.now += step
		cycles -= step

		if running {
			s.timerLeft -= step
			if s.timerLeft == 0 {
				s.timerLeft = uint64(s.regs[timer5TAILR]) + 1
				s.timerRIS |= timerRISTATORIS
			}
		}
		s.dispatch()
	}
}

// Dispatch delivers a pending timer interrupt without advancing time, the
// way the core takes one as soon as the mask is lifted.
func (s *SimBus) Dispatch() {
	s.dispatch()
}

func (s *SimBus) timerRunning() bool {
	return s.regs[sysctlRCGCTIMER]&gateTimer5 != 0 && s.regs[timer5CTL]&timerCTLTAEN != 0
}

func (s *SimBus) irqPending() bool {
	return s.timerRIS&s.regs[timer5IMR]&timerIMRTATOIM != 0 && s.nvicEN2&nvicTimer5ABit != 0
}

func (s *SimBus) dispatch() {
	if s.handler == nil || s.depth > 0 || core.InterruptsMasked() || !s.irqPending() {
		return
	}
	s.depth++
	if s.depth > s.maxDepth {
		s.maxDepth = s.depth
	}
	s.deliveries++
	s.handler()
	s.depth--

	// The line is level sensitive: a handler that did not clear the flag is
	// entered again on the next step.
	if s.irqPending() {
		s.unacked++
	}
}

func (s *SimBus) drainUART(cycles uint64) {
	if s.txFIFO.Empty() {
		s.txCycles = 0
		return
	}
	perByte := s.cyclesPerFrame()
	if perByte == 0 {
		return
	}
	s.txCycles += cycles
	for s.txCycles >= perByte {
		b, ok := s.txFIFO.Pop()
		if !ok {
			s.txCycles = 0
			return
		}
		s.line = append(s.line, b)
		s.txCycles -= perByte
	}
}

// cyclesPerFrame is the bus cycles one 8N1 frame takes:
// 10 bits * 16 * (IBRD + FBRD/64).
func (s *SimBus) cyclesPerFrame() uint64 {
	if s.regs[uart0CTL]&uartCTLUARTEN == 0 {
		return 0
	}
	scaled := uint64(s.regs[uart0IBRD])*64 + uint64(s.regs[uart0FBRD])
	return 10 * scaled / 4
}

func (s *SimBus) convert() uint32 {
	if s.regs[adc1ACTSS]&adcACTSSASEN3 == 0 {
		return s.regs[adc1SSFIFO3]
	}
	var sample uint16
	if s.analog != nil {
		sample = s.analog(s.now) & adcResultMask
	}

	size := 1 << (s.regs[adc1SAC] & 0x7)
	if size > len(s.window) {
		size = len(s.window)
	}
	s.window[s.windowI%size] = sample
	s.windowI = (s.windowI + 1) % size
	if s.windowN < size {
		s.windowN++
	}
	var sum uint32
	for i := 0; i < s.windowN; i++ {
		sum += uint32(s.window[i])
	}
	result := sum / uint32(s.windowN)
	s.regs[adc1SSFIFO3] = result
	return result
}

// SetIRQHandler installs the Timer5A interrupt handler.
func (s *SimBus) SetIRQHandler(handler func()) {
	s.handler = handler
}

// SetAnalogInput sets the voltage seen by the converter, as a 12-bit code
// sampled at the given bus cycle.
func (s *SimBus) SetAnalogInput(fn func(now uint64) uint16) {
	s.analog = fn
}

// SetPortInput drives the input lines of port p.
func (s *SimBus) SetPortInput(p core.Port, value uint8) {
	s.inputs[p] = value
}

// StallReady keeps every peripheral-ready bit clear.
func (s *SimBus) StallReady(stall bool) {
	s.stallReady = stall
}

// StallPLL keeps the PLL from locking.
func (s *SimBus) StallPLL(stall bool) {
	s.stallPLL = stall
}

// Peek returns a register's stored value without side effects.
func (s *SimBus) Peek(addr uintptr) uint32 {
	return s.regs[addr]
}

// IRQEnabled reports whether IRQ 92 is enabled in the NVIC.
func (s *SimBus) IRQEnabled() bool {
	return s.nvicEN2&nvicTimer5ABit != 0
}

// Line returns every byte the UART has shifted out so far.
func (s *SimBus) Line() []byte {
	return append([]byte(nil), s.line...)
}

// TakeLine returns and forgets the bytes shifted out so far.
func (s *SimBus) TakeLine() []byte {
	line := s.line
	s.line = nil
	return line
}

// Flush lets the UART finish what is queued without advancing the timer.
func (s *SimBus) Flush() {
	for !s.txFIFO.Empty() {
		perByte := s.cyclesPerFrame()
		if perByte == 0 {
			return
		}
		s.drainUART(perByte)
		s.now += perByte
	}
}

// Writes returns the store log.
func (s *SimBus) Writes() []Write {
	return append([]Write(nil), s.writes...)
}

// ResetWrites clears the store log.
func (s *SimBus) ResetWrites() {
	s.writes = s.writes[:0]
}

// Now returns the elapsed bus cycles.
func (s *SimBus) Now() uint64 { return s.now }

// Faults returns the number of accesses to gated-off peripherals.
func (s *SimBus) Faults() int { return s.faults }

// Overruns returns the number of bytes lost to a full transmit FIFO.
func (s *SimBus) Overruns() int { return s.overruns }

// Deliveries returns the number of timer interrupts taken.
func (s *SimBus) Deliveries() int { return s.deliveries }

// MaxDepth returns the deepest handler nesting seen.
func (s *SimBus) MaxDepth() int { return s.maxDepth }

// Unacknowledged returns how many handler runs returned with the timeout
// flag still set.
func (s *SimBus) Unacknowledged() int { return s.unacked }

// Snapshot copies the stored register values.
func (s *SimBus) Snapshot() map[uintptr]uint32 {
	regs := make(map[uintptr]uint32, len(s.regs))
	for addr, v := range s.regs {
		regs[addr] = v
	}
	return regs
}
