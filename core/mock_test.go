package core

// mockTimer records every driver call and whether interrupts were masked
// when it happened.
type mockTimer struct {
	clock   bool
	calls   []string
	masked  []bool
	reload  uint32
	prio    uint8
	irqOn   bool
	pending bool
}

func (m *mockTimer) record(call string) {
	m.calls = append(m.calls, call)
	m.masked = append(m.masked, InterruptsMasked())
}

func (m *mockTimer) ClockEnabled() bool { return m.clock }

func (m *mockTimer) Arm(reload uint32, priority uint8) {
	m.record("arm")
	m.clock = true
	m.reload = reload
	m.prio = priority
	m.irqOn = true
}

func (m *mockTimer) Acknowledge() {
	m.record("ack")
	m.pending = false
}

func (m *mockTimer) DisableIRQ() {
	m.record("disable")
	m.irqOn = false
}

type mockADC struct {
	configured []AnalogChannel
	values     []ADCValue
	reads      int
	err        error
}

func (m *mockADC) ConfigureChannel(ch AnalogChannel) error {
	if m.err != nil {
		return m.err
	}
	m.configured = append(m.configured, ch)
	return nil
}

func (m *mockADC) Latest() ADCValue {
	if len(m.values) == 0 {
		return 0
	}
	v := m.values[m.reads%len(m.values)]
	m.reads++
	return v
}

type mockGPIO struct {
	enabled []Port
	inputs  [NumPorts]uint8
}

func (m *mockGPIO) EnablePort(p Port) { m.enabled = append(m.enabled, p) }

func (m *mockGPIO) ReadPort(p Port, mask uint8) uint8 { return m.inputs[p] & mask }

type mockUART struct {
	div        BaudDivisor
	configured int
	sent       []byte
}

func (m *mockUART) Configure(div BaudDivisor) {
	m.div = div
	m.configured++
}

func (m *mockUART) WriteData(b byte) { m.sent = append(m.sent, b) }

type mockClock struct {
	requested uint32
	actual    uint32
}

func (m *mockClock) SetBusClock(target uint32) uint32 {
	m.requested = target
	if m.actual != 0 {
		return m.actual
	}
	return target
}

type mockBoard struct {
	timer *mockTimer
	adc   *mockADC
	gpio  *mockGPIO
	uart  *mockUART
	clock *mockClock
}

func newMockBoard() *mockBoard {
	return &mockBoard{
		timer: &mockTimer{},
		adc:   &mockADC{},
		gpio:  &mockGPIO{},
		uart:  &mockUART{},
		clock: &mockClock{},
	}
}

func (m *mockBoard) Board() Board {
	return Board{Clock: m.clock, Timer: m.timer, ADC: m.adc, GPIO: m.gpio, UART: m.uart}
}

// resetInterrupts leaves the simulated mask cleared for the next test.
func resetInterrupts() {
	restoreInterrupts(0)
	ClearEvents()
}
