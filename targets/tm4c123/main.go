//go:build tm4c123

package main

import (
	"device/arm"
	"runtime/interrupt"

	"texas/core"
	"texas/hal/tm4c123"
)

// selector is global so the interrupt handler can reach it without a
// closure over locals.
var selector *core.Selector

func main() {
	board := tm4c123.NewBoard(tm4c123.MMIO{})
	selector = core.NewSelector(board.Drivers())

	// Vector only. Timer5A.Arm sets the priority and enables the line.
	interrupt.New(tm4c123.IRQTimer5A, func(interrupt.Interrupt) {
		selector.HandleInterrupt()
	})

	// A failed start leaves the link silent; the reason is in the event
	// ring for a debugger to read.
	if err := selector.Start(SelectMode()); err != nil {
		core.DumpEvents()
	}

	for {
		arm.Asm("wfi")
	}
}
