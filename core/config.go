package core

// Fixed session parameters. The host decoder depends on the byte rate and
// baud rate, so they are compile-time constants rather than options.
const (
	BusHz        = 80000000 // PLL target, 80 MHz
	BaudRate     = 115200
	TickHz       = 10000 // one sample every 100us
	TickPriority = 5

	MaxTickHz   = 10000
	MaxPriority = 6 // 0 is the highest precedence
)
