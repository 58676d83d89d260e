package core

// SerialDriver is the chip side of the Serial Transport.
type SerialDriver interface {
	// Configure disables the transmitter, loads the divisors, selects 8-bit
	// words with FIFOs, re-enables it and routes the pins to the UART.
	Configure(div BaudDivisor)

	// WriteData stores b in the transmit data register. No FIFO check.
	WriteData(b byte)
}

// BusClock is the PLL collaborator. SetBusClock returns the frequency
// actually reached.
type BusClock interface {
	SetBusClock(targetHz uint32) uint32
}
