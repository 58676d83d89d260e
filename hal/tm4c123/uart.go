package tm4c123

import "texas/core"

// UART0 is the telemetry link on PA1-0 (the LaunchPad's debug USB bridge).
type UART0 struct {
	bus    Bus
	sysctl *SysCtl
	gpio   *GPIO
}

// NewUART0 returns the serial driver.
func NewUART0(bus Bus, sysctl *SysCtl, gpio *GPIO) *UART0 {
	return &UART0{bus: bus, sysctl: sysctl, gpio: gpio}
}

// Configure implements core.SerialDriver.
func (u *UART0) Configure(div core.BaudDivisor) {
	_ = u.sysctl.enable(sysctlRCGCUART, gateUART0)

	b := u.bus
	clearBits(b, uart0CTL, uartCTLUARTEN)
	b.Store(uart0IBRD, uint32(div.Integer))
	b.Store(uart0FBRD, uint32(div.Fraction))
	b.Store(uart0LCRH, uartLCRHWLEN8|uartLCRHFEN)
	setBits(b, uart0CTL, uartCTLUARTEN)

	_ = u.gpio.routeUART0()
}

// WriteData implements core.SerialDriver. A full FIFO drops the byte.
func (u *UART0) WriteData(c byte) {
	u.bus.Store(uart0DR, uint32(c))
}

// TxFull reports whether the transmit FIFO is full.
func (u *UART0) TxFull() bool {
	return hasBits(u.bus, uart0FR, uartFRTXFF)
}

var _ core.SerialDriver = (*UART0)(nil)
