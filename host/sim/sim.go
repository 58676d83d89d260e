// Package sim runs the firmware's session code against a simulated TM4C123
// and collects the byte stream it would put on the wire.
package sim

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"texas/core"
	"texas/hal/tm4c123"
)

// Options describes one simulated session.
type Options struct {
	Mode  core.Mode
	Ticks int

	// Analog input for scope modes: offset + amplitude*sin(2*pi*f*t), as
	// fractions of full scale.
	Frequency float32
	Amplitude float32
	Offset    float32

	// Port lines for logic modes. The value is incremented every tick so
	// every line toggles at a different rate.
	Logic uint8
}

// Result is what a simulated session produced.
type Result struct {
	Stream     []byte
	BusHz      uint32
	Reload     uint32
	Divisor    core.BaudDivisor
	Ticks      uint32
	Deliveries int
	Reentries  uint32
	Overruns   int
	Faults     int
	Events     []core.Event
}

// Sine returns an analog input function for a SimBus running at busHz.
func Sine(busHz uint32, freq, amplitude, offset float32) func(now uint64) uint16 {
	return func(now uint64) uint16 {
		t := float32(float64(now) / float64(busHz))
		v := offset + amplitude*math32.Sin(2*math32.Pi*freq*t)
		v = math32.Max(0, math32.Min(1, v))
		return uint16(v*float32(core.ADCMax) + 0.5)
	}
}

// Run starts a session for opts.Mode on a fresh simulated board, lets
// opts.Ticks timer periods elapse, stops it and returns the stream.
func Run(opts Options) (*Result, error) {
	if opts.Ticks <= 0 {
		return nil, errors.New("tick count must be positive")
	}

	bus := tm4c123.NewSimBus()
	board := tm4c123.NewBoard(bus)
	sel := core.NewSelector(board.Drivers())
	bus.SetIRQHandler(sel.HandleInterrupt)
	bus.SetAnalogInput(Sine(core.BusHz, opts.Frequency, opts.Amplitude, opts.Offset))

	core.ClearEvents()
	if err := sel.Start(opts.Mode); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", opts.Mode, err)
	}

	period := uint64(sel.Scheduler().Config().Reload) + 1
	for i := 0; i < opts.Ticks; i++ {
		if opts.Mode.IsLogic() {
			bus.SetPortInput(opts.Mode.Port(), opts.Logic+uint8(i))
		}
		bus.Advance(period)
	}
	sel.Stop()
	bus.Flush()

	return &Result{
		Stream:     bus.TakeLine(),
		BusHz:      sel.BusHz(),
		Reload:     sel.Scheduler().Config().Reload,
		Divisor:    sel.Transport().Divisor(),
		Ticks:      sel.Scheduler().Ticks(),
		Deliveries: bus.Deliveries(),
		Reentries:  sel.Scheduler().Reentries(),
		Overruns:   bus.Overruns(),
		Faults:     bus.Faults(),
		Events:     core.Events(),
	}, nil
}
