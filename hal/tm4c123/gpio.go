package tm4c123

import "texas/core"

// GPIO drives ports A-F through the APB aperture.
type GPIO struct {
	bus    Bus
	sysctl *SysCtl
}

// NewGPIO returns the port driver.
func NewGPIO(bus Bus, sysctl *SysCtl) *GPIO {
	return &GPIO{bus: bus, sysctl: sysctl}
}

func portReg(p core.Port, offset uintptr) uintptr {
	return gpioBase[p] + offset
}

// EnablePort implements core.PortDriver. Pins keep their reset state:
// inputs, digital disabled, so only the clock is touched.
func (g *GPIO) EnablePort(p core.Port) {
	if p >= core.NumPorts {
		return
	}
	_ = g.sysctl.enable(sysctlRCGCGPIO, 1<<p)
}

// ReadPort implements core.PortDriver. The masked data window returns the
// selected lines in one load and zeros elsewhere.
func (g *GPIO) ReadPort(p core.Port, mask uint8) uint8 {
	return uint8(g.bus.Load(portReg(p, gpioData+uintptr(mask)<<2)))
}

// ConfigureAnalog switches the pins in mask to their analog function: input,
// alternate function on, digital off, analog isolation off.
func (g *GPIO) ConfigureAnalog(p core.Port, mask uint8) error {
	if p >= core.NumPorts {
		return core.ErrUnsupportedPin
	}
	if err := g.sysctl.enable(sysctlRCGCGPIO, 1<<p); err != nil {
		return err
	}
	m := uint32(mask)
	clearBits(g.bus, portReg(p, gpioDIR), m)
	setBits(g.bus, portReg(p, gpioAFSEL), m)
	clearBits(g.bus, portReg(p, gpioDEN), m)
	setBits(g.bus, portReg(p, gpioAMSEL), m)
	return nil
}

// routeUART0 hands PA1-0 to UART0.
func (g *GPIO) routeUART0() error {
	if err := g.sysctl.enable(sysctlRCGCGPIO, 1<<core.PortA); err != nil {
		return err
	}
	setBits(g.bus, portReg(core.PortA, gpioAFSEL), uart0Pins)
	setBits(g.bus, portReg(core.PortA, gpioDEN), uart0Pins)
	replaceBits(g.bus, portReg(core.PortA, gpioPCTL), uart0PCTL, uart0PCTLMask)
	clearBits(g.bus, portReg(core.PortA, gpioAMSEL), uart0Pins)
	return nil
}

var _ core.PortDriver = (*GPIO)(nil)
