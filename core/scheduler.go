package core

import "sync/atomic"

// Task is the zero-argument body run on every tick. Run executes in
// interrupt context: no blocking, no allocation, done well within a tick.
type Task interface {
	Run()
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func()

// Run calls f.
func (f TaskFunc) Run() { f() }

// SchedulerState is the scheduler lifecycle.
type SchedulerState uint8

const (
	SchedulerUnconfigured SchedulerState = iota
	SchedulerArmed
	SchedulerDisarmed
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerUnconfigured:
		return "unconfigured"
	case SchedulerArmed:
		return "armed"
	case SchedulerDisarmed:
		return "disarmed"
	default:
		return "unknown"
	}
}

// TimerConfig is the configuration accepted by the last successful Configure.
type TimerConfig struct {
	TickHz   uint32
	Priority uint8
	Reload   uint32
}

// Scheduler fires one bound task at a fixed rate from a dedicated hardware
// timer. It owns the single task slot; binding a new task replaces the old.
type Scheduler struct {
	timer PeriodicTimerDriver
	task  Task
	cfg   TimerConfig
	state SchedulerState

	active    atomic.Uint32 // non-zero while HandleInterrupt runs
	ticks     atomic.Uint32
	reentries atomic.Uint32
}

// NewScheduler creates a scheduler driving timer.
func NewScheduler(timer PeriodicTimerDriver) *Scheduler {
	return &Scheduler{timer: timer}
}

// Configure binds task and arms the timer at tickHz with the given priority
// (clamped to 0..6). An invalid rate returns ErrInvalidRate before any
// register access, leaving the previous configuration in place.
func (s *Scheduler) Configure(task Task, busHz, tickHz uint32, priority uint8) error {
	reload, err := ReloadValue(busHz, tickHz)
	if err != nil {
		RecordEvent(EvtRateRejected, tickHz, busHz)
		return err
	}
	if task == nil {
		return ErrNoTask
	}
	priority = ClampPriority(priority)

	cs := EnterCritical()
	defer cs.Exit()

	s.task = task
	s.timer.Arm(reload, priority)
	s.cfg = TimerConfig{TickHz: tickHz, Priority: priority, Reload: reload}
	s.state = SchedulerArmed

	RecordEvent(EvtTimerArmed, tickHz, reload)
	return nil
}

// Stop clears a pending timeout and disables the timer interrupt. It is a
// no-op when the timer clock was never enabled. The timer keeps counting
// and its clock stays gated on; the goal is only to stop dispatching.
func (s *Scheduler) Stop() {
	cs := EnterCritical()
	defer cs.Exit()

	if !s.timer.ClockEnabled() {
		return
	}
	s.timer.Acknowledge()
	s.timer.DisableIRQ()
	s.task = nil
	s.state = SchedulerDisarmed

	RecordEvent(EvtTimerStopped, s.ticks.Load(), 0)
}

// HandleInterrupt is the timer ISR body. The timeout is acknowledged before
// the task runs; an unacknowledged timeout re-triggers immediately.
func (s *Scheduler) HandleInterrupt() {
	s.timer.Acknowledge()

	if !s.active.CompareAndSwap(0, 1) {
		s.reentries.Add(1)
		return
	}
	if task := s.task; task != nil {
		task.Run()
		s.ticks.Add(1)
	}
	s.active.Store(0)
}

// State returns the lifecycle state.
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// Config returns the active configuration.
func (s *Scheduler) Config() TimerConfig {
	return s.cfg
}

// Bound reports whether a task occupies the slot.
func (s *Scheduler) Bound() bool {
	return s.task != nil
}

// Ticks returns how many ticks dispatched a task.
func (s *Scheduler) Ticks() uint32 {
	return s.ticks.Load()
}

// Reentries returns how many times HandleInterrupt was entered while
// already running. Always zero on hardware.
func (s *Scheduler) Reentries() uint32 {
	return s.reentries.Load()
}
