// Package tm4c123 drives the TM4C123GH6PM peripherals the telemetry firmware
// uses: the PLL, Timer5A, ADC1 sequencer 3, UART0 and the APB GPIO ports.
//
// Every access goes through a Bus. On the device that is plain memory-mapped
// I/O; on a host it is a SimBus, a register file with just enough peripheral
// behavior to run the firmware end to end.
package tm4c123

import "errors"

// ErrClockNotReady is returned when a peripheral's ready bit never follows
// its clock gate.
var ErrClockNotReady = errors.New("peripheral clock not ready")

// Bus is 32-bit register access by absolute address.
type Bus interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, value uint32)
}

func setBits(b Bus, addr uintptr, mask uint32) {
	b.Store(addr, b.Load(addr)|mask)
}

func clearBits(b Bus, addr uintptr, mask uint32) {
	b.Store(addr, b.Load(addr)&^mask)
}

// replaceBits writes value into the field selected by mask.
func replaceBits(b Bus, addr uintptr, value, mask uint32) {
	b.Store(addr, b.Load(addr)&^mask|value&mask)
}

func hasBits(b Bus, addr uintptr, mask uint32) bool {
	return b.Load(addr)&mask == mask
}
