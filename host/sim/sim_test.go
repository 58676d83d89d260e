package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texas/core"
	"texas/protocol"
)

func TestSine(t *testing.T) {
	const busHz = 80000000
	fn := Sine(busHz, 1, 0.5, 0.5)

	assert.Equal(t, uint16(2048), fn(0))
	assert.Equal(t, uint16(4095), fn(busHz/4))
	assert.Equal(t, uint16(0), fn(busHz*3/4))

	// Clipped at the rails.
	hot := Sine(busHz, 1, 2, 0.5)
	assert.Equal(t, uint16(4095), hot(busHz/4))
	assert.Equal(t, uint16(0), hot(busHz*3/4))
}

func TestRunScope(t *testing.T) {
	res, err := Run(Options{
		Mode:      core.ScopePD3,
		Ticks:     10000,
		Frequency: 50,
		Amplitude: 0.45,
		Offset:    0.5,
	})
	require.NoError(t, err)

	assert.Len(t, res.Stream, 10000)
	assert.Equal(t, uint32(80000000), res.BusHz)
	assert.Equal(t, uint32(7999), res.Reload)
	assert.Equal(t, core.BaudDivisor{Integer: 43, Fraction: 26}, res.Divisor)
	assert.Equal(t, uint32(10000), res.Ticks)
	assert.Equal(t, 10000, res.Deliveries)
	assert.Zero(t, res.Reentries)
	assert.Zero(t, res.Overruns)
	assert.Zero(t, res.Faults)

	lo, hi := byte(0xFF), byte(0)
	for _, b := range res.Stream {
		lo = min(lo, b)
		hi = max(hi, b)
	}
	// 0.05 and 0.95 of full scale, less the averaging lag.
	assert.InDelta(t, 0x0C, int(lo), 3)
	assert.InDelta(t, 0xF3, int(hi), 3)
}

func TestRunLogic(t *testing.T) {
	tests := []struct {
		mode core.Mode
		want func(i int) byte
	}{
		{core.LogicPortB, func(i int) byte { return byte(i)&0x7F | 0x80 }},
		{core.LogicPortA, func(i int) byte { return byte(i)>>2 | 0x80 }},
		{core.LogicPortC, func(i int) byte { return byte(i)>>4 | 0x80 }},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			res, err := Run(Options{Mode: tt.mode, Ticks: 300})
			require.NoError(t, err)
			require.Len(t, res.Stream, 300)

			for i, b := range res.Stream {
				if b != tt.want(i) {
					t.Fatalf("byte %d: got 0x%02X, want 0x%02X", i, b, tt.want(i))
				}
				assert.Equal(t, protocol.KindLogic, protocol.Classify(b))
			}
		})
	}
}

func TestRunEvents(t *testing.T) {
	res, err := Run(Options{Mode: core.LogicPortF, Ticks: 25})
	require.NoError(t, err)

	require.NotEmpty(t, res.Events)
	last := res.Events[len(res.Events)-1]
	assert.Equal(t, uint8(core.EvtSessionStop), last.Type)
	assert.Equal(t, uint32(25), last.Value1)
}

func TestRunRejects(t *testing.T) {
	_, err := Run(Options{Mode: core.ScopePD3})
	assert.Error(t, err)

	_, err = Run(Options{Mode: core.Scope(core.NewPin(core.PortF, 0)), Ticks: 10})
	assert.ErrorIs(t, err, core.ErrUnsupportedPin)
}
