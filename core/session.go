package core

// SessionState is the two-state session lifecycle.
type SessionState uint8

const (
	Idle SessionState = iota
	Running
)

func (s SessionState) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Board groups the chip drivers a session needs. Clock may be nil when the
// bus already runs at BusHz.
type Board struct {
	Clock BusClock
	Timer PeriodicTimerDriver
	ADC   ADCDriver
	GPIO  PortDriver
	UART  SerialDriver
}

// Selector turns an acquisition mode into a running session and owns every
// resource of it. Only one session can be live at a time.
type Selector struct {
	board     Board
	scheduler *Scheduler
	transport *Transport

	state  SessionState
	mode   Mode
	busHz  uint32
	source Source
	task   sampleTask
}

// NewSelector creates an idle selector over board.
func NewSelector(board Board) *Selector {
	return &Selector{
		board:     board,
		scheduler: NewScheduler(board.Timer),
		transport: NewTransport(board.UART),
	}
}

// Start brings up the bus clock and the serial link, initializes the
// acquisition source for mode, binds the sampling task at TickHz with
// TickPriority and unmasks interrupts.
//
// Mode and pin are validated before any register is written, and a second
// Start without Stop returns ErrAlreadyRunning without touching hardware.
func (s *Selector) Start(mode Mode) error {
	if s.state == Running {
		return ErrAlreadyRunning
	}

	var logic LogicPort
	switch mode.kind {
	case ModeLogic:
		l, ok := LookupLogicPort(mode.port)
		if !ok {
			return ErrUnknownMode
		}
		logic = l
	case ModeScope:
		if _, ok := LookupAnalogChannel(mode.pin); !ok {
			RecordEvent(EvtPinRejected, uint32(mode.pin), 0)
			return ErrUnsupportedPin
		}
	default:
		return ErrUnknownMode
	}

	busHz := uint32(BusHz)
	if s.board.Clock != nil {
		busHz = s.board.Clock.SetBusClock(BusHz)
	}
	if err := s.transport.Init(busHz, BaudRate); err != nil {
		return err
	}

	var source Source
	if mode.kind == ModeLogic {
		source = NewLogicSource(s.board.GPIO, logic)
	} else {
		scope, err := InitChannel(s.board.ADC, mode.pin)
		if err != nil {
			return err
		}
		source = scope
	}

	s.task = sampleTask{source: source, transport: s.transport}
	if err := s.scheduler.Configure(&s.task, busHz, TickHz, TickPriority); err != nil {
		return err
	}
	EnableInterrupts()

	s.state = Running
	s.mode = mode
	s.busHz = busHz
	s.source = source

	RecordEvent(EvtSessionStart, uint32(mode.kind), busHz)
	DebugPrintln("texas: streaming " + mode.String() + " at " + utoa(TickHz) + " Hz")
	return nil
}

// Stop ends the session. The scheduler stop is idempotent, so Stop on an
// idle selector is harmless.
func (s *Selector) Stop() {
	s.scheduler.Stop()
	if s.state == Running {
		RecordEvent(EvtSessionStop, s.scheduler.Ticks(), 0)
		DebugPrintln("texas: stopped after " + utoa(s.scheduler.Ticks()) + " ticks")
	}
	s.state = Idle
	s.source = nil
}

// HandleInterrupt is installed as the timer interrupt handler.
func (s *Selector) HandleInterrupt() {
	s.scheduler.HandleInterrupt()
}

// State returns the session state.
func (s *Selector) State() SessionState { return s.state }

// Mode returns the mode of the running session.
func (s *Selector) Mode() Mode { return s.mode }

// BusHz returns the bus frequency the session was configured with.
func (s *Selector) BusHz() uint32 { return s.busHz }

// Source returns the acquisition source of the running session, nil when idle.
func (s *Selector) Source() Source { return s.source }

// Scheduler exposes the periodic scheduler for diagnostics.
func (s *Selector) Scheduler() *Scheduler { return s.scheduler }

// Transport exposes the serial transport for diagnostics.
func (s *Selector) Transport() *Transport { return s.transport }
