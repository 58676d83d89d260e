package core

// BaudDivisor is the UART clock divisor split the way the hardware wants it:
// a 16-bit integer part and a 6-bit fraction in 64ths.
type BaudDivisor struct {
	Integer  uint16
	Fraction uint8
}

// ComputeBaudDivisor returns the divisor for busHz/(16*baud). The fraction
// is rounded to the nearest 64th, ties to even. For 80 MHz and 115200 baud
// that is 43 + 26/64.
func ComputeBaudDivisor(busHz, baud uint32) (BaudDivisor, error) {
	if baud == 0 {
		return BaudDivisor{}, ErrInvalidBaud
	}

	// divisor*64 = busHz*64/(16*baud) = busHz*4/baud
	num := uint64(busHz) * 4
	q := num / uint64(baud)
	r := num % uint64(baud)
	if 2*r > uint64(baud) || (2*r == uint64(baud) && q&1 == 1) {
		q++
	}

	integer := q >> 6
	if integer == 0 || integer > 0xFFFF {
		return BaudDivisor{}, ErrInvalidBaud
	}
	return BaudDivisor{Integer: uint16(integer), Fraction: uint8(q & 0x3F)}, nil
}

// ActualBaud returns the baud rate a divisor produces at busHz.
func (d BaudDivisor) ActualBaud(busHz uint32) uint32 {
	scaled := uint64(d.Integer)*64 + uint64(d.Fraction)
	if scaled == 0 {
		return 0
	}
	return uint32(uint64(busHz) * 4 / scaled)
}

// Transport is the one-byte-per-tick link to the host. The tick task is the
// only writer, so it needs no locking.
type Transport struct {
	uart SerialDriver
	div  BaudDivisor
}

// NewTransport creates a transport over uart.
func NewTransport(uart SerialDriver) *Transport {
	return &Transport{uart: uart}
}

// Init programs the UART for baud at busHz, 8N1 with FIFOs.
func (t *Transport) Init(busHz, baud uint32) error {
	div, err := ComputeBaudDivisor(busHz, baud)
	if err != nil {
		return err
	}
	t.uart.Configure(div)
	t.div = div
	return nil
}

// Send writes b straight into the data register. A full transmit FIFO
// silently drops the byte; the tick path never waits for space.
func (t *Transport) Send(b byte) {
	t.uart.WriteData(b)
}

// Divisor returns the divisor loaded by Init.
func (t *Transport) Divisor() BaudDivisor {
	return t.div
}
