package core

// Port identifies a GPIO port (pin group).
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF

	NumPorts
)

func (p Port) String() string {
	if p >= NumPorts {
		return "P?"
	}
	return "P" + string(rune('A'+p))
}

// Pin identifies a GPIO pin as port*8 + bit.
type Pin uint8

// NewPin builds a pin identifier.
func NewPin(port Port, bit uint8) Pin {
	return Pin(uint8(port)*8 + bit&7)
}

// Analog capable pins used by the scope modes.
var (
	PB5 = NewPin(PortB, 5)
	PD2 = NewPin(PortD, 2)
	PD3 = NewPin(PortD, 3)
	PE2 = NewPin(PortE, 2)
)

// Port returns the pin's port.
func (p Pin) Port() Port { return Port(p / 8) }

// Bit returns the pin's position within its port.
func (p Pin) Bit() uint8 { return uint8(p % 8) }

// Mask returns the pin's bit mask within its port registers.
func (p Pin) Mask() uint8 { return 1 << p.Bit() }

func (p Pin) String() string {
	return p.Port().String() + string(rune('0'+p.Bit()))
}

// PortDriver is the abstract GPIO interface that core code uses.
type PortDriver interface {
	// EnablePort turns on the port's clock gate.
	EnablePort(p Port)

	// ReadPort returns the live state of the lines selected by mask. Lines
	// outside mask read as zero.
	ReadPort(p Port, mask uint8) uint8
}
