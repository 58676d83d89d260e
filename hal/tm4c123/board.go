package tm4c123

import "texas/core"

// Board is the set of drivers the firmware runs on, all sharing one bus.
type Board struct {
	SysCtl *SysCtl
	Timer  *Timer5A
	GPIO   *GPIO
	ADC    *ADC1
	UART   *UART0
}

// NewBoard wires the drivers to bus.
func NewBoard(bus Bus) *Board {
	sysctl := NewSysCtl(bus)
	gpio := NewGPIO(bus, sysctl)
	return &Board{
		SysCtl: sysctl,
		Timer:  NewTimer5A(bus, sysctl),
		GPIO:   gpio,
		ADC:    NewADC1(bus, sysctl, gpio),
		UART:   NewUART0(bus, sysctl, gpio),
	}
}

// Drivers returns the board as the collaborator set core.NewSelector takes.
func (b *Board) Drivers() core.Board {
	return core.Board{
		Clock: b.SysCtl,
		Timer: b.Timer,
		ADC:   b.ADC,
		GPIO:  b.GPIO,
		UART:  b.UART,
	}
}
