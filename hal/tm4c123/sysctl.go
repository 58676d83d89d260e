package tm4c123

// Bounded polls. Both conditions complete within a few cycles on silicon;
// the bound only keeps a dead peripheral from hanging start-up.
const (
	pllLockSpins = 100000
	readySpins   = 1000
)

// SysCtl owns the system clock and the run-mode clock gates.
type SysCtl struct {
	bus   Bus
	busHz uint32
}

// NewSysCtl returns the clock controller in its reset state, running from
// the precision internal oscillator.
func NewSysCtl(bus Bus) *SysCtl {
	return &SysCtl{bus: bus, busHz: PIOSCHz}
}

// BusHz returns the current bus frequency.
func (s *SysCtl) BusHz() uint32 {
	return s.busHz
}

// SetBusClock runs the core from the PLL at the closest frequency not above
// targetHz, using the 16 MHz crystal and the 400 MHz VCO. It returns the
// frequency reached. If the PLL never locks the core stays on the crystal.
func (s *SysCtl) SetBusClock(targetHz uint32) uint32 {
	div := uint32(0x7F)
	if targetHz > 0 {
		sysdiv := PLLHz / targetHz
		if PLLHz%targetHz != 0 {
			sysdiv++
		}
		if sysdiv < PLLHz/MaxBusHz {
			sysdiv = PLLHz / MaxBusHz
		}
		if sysdiv-1 < div {
			div = sysdiv - 1
		}
	}

	b := s.bus
	setBits(b, sysctlRCC2, rcc2USERCC2)
	setBits(b, sysctlRCC2, rcc2BYPASS2)
	replaceBits(b, sysctlRCC, rccXTAL16, rccXTALMask)
	clearBits(b, sysctlRCC2, rcc2OSCSRCMask) // main oscillator
	clearBits(b, sysctlRCC2, rcc2PWRDN2)
	setBits(b, sysctlRCC2, rcc2DIV400)
	replaceBits(b, sysctlRCC2, div<<rcc2SYSDIVPos, rcc2SYSDIVMask)

	if !s.poll(sysctlRIS, risPLLLRIS, pllLockSpins) {
		s.busHz = XtalHz
		return s.busHz
	}
	clearBits(b, sysctlRCC2, rcc2BYPASS2)
	s.busHz = PLLHz / (div + 1)
	return s.busHz
}

// enable turns on a clock gate and waits for the matching ready bit.
func (s *SysCtl) enable(rcgc uintptr, gate uint32) error {
	setBits(s.bus, rcgc, gate)
	if !s.poll(rcgc+sysctlPROffset, gate, readySpins) {
		return ErrClockNotReady
	}
	return nil
}

func (s *SysCtl) enabled(rcgc uintptr, gate uint32) bool {
	return hasBits(s.bus, rcgc, gate)
}

func (s *SysCtl) poll(addr uintptr, mask uint32, spins int) bool {
	for i := 0; i < spins; i++ {
		if hasBits(s.bus, addr, mask) {
			return true
		}
	}
	return false
}
