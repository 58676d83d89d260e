package core

import (
	"errors"
	"testing"
)

func TestReloadValue(t *testing.T) {
	testCases := []struct {
		busHz  uint32
		tickHz uint32
		want   uint32
	}{
		{80000000, 10000, 7999},
		{80000000, 1, 79999999},
		{80000000, 3, 26666665}, // rounded down
		{80000000, 7, 11428570},
		{16000000, 1000, 15999},
		{50000000, 9999, 4999}, // 5000.5 truncates to 5000
	}

	for _, tc := range testCases {
		got, err := ReloadValue(tc.busHz, tc.tickHz)
		if err != nil {
			t.Errorf("ReloadValue(%d, %d) failed: %v", tc.busHz, tc.tickHz, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ReloadValue(%d, %d) = %d, want %d", tc.busHz, tc.tickHz, got, tc.want)
		}
	}
}

func TestReloadValueAllRates(t *testing.T) {
	for hz := uint32(1); hz <= MaxTickHz; hz++ {
		got, err := ReloadValue(BusHz, hz)
		if err != nil {
			t.Fatalf("rate %d rejected: %v", hz, err)
		}
		if got != BusHz/hz-1 {
			t.Fatalf("rate %d: reload %d, want %d", hz, got, BusHz/hz-1)
		}
	}
}

func TestReloadValueRejects(t *testing.T) {
	for _, hz := range []uint32{0, MaxTickHz + 1, 1 << 31} {
		if _, err := ReloadValue(BusHz, hz); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("rate %d: expected ErrInvalidRate, got %v", hz, err)
		}
	}
	// A bus too slow for the rate would give a zero reload.
	if _, err := ReloadValue(10000, 10000); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("zero reload should be rejected, got %v", err)
	}
}

func TestSchedulerConfigure(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	err := sched.Configure(TaskFunc(func() {}), BusHz, 10000, 5)
	if err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	if timer.reload != 7999 {
		t.Errorf("Expected reload 7999, got %d", timer.reload)
	}
	if timer.prio != 5 {
		t.Errorf("Expected priority 5, got %d", timer.prio)
	}
	if sched.State() != SchedulerArmed {
		t.Errorf("Expected armed, got %v", sched.State())
	}
	if !sched.Bound() {
		t.Error("Task should be bound")
	}

	for i, masked := range timer.masked {
		if !masked {
			t.Errorf("Driver call %q ran with interrupts enabled", timer.calls[i])
		}
	}
	if InterruptsMasked() {
		t.Error("Configure should restore the unmasked state")
	}
}

func TestSchedulerConfigureRestoresMaskedState(t *testing.T) {
	resetInterrupts()
	sched := NewScheduler(&mockTimer{})

	outer := EnterCritical()
	if err := sched.Configure(TaskFunc(func() {}), BusHz, 1000, 3); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if !InterruptsMasked() {
		t.Error("Configure must not unmask interrupts the caller masked")
	}
	outer.Exit()

	if InterruptsMasked() {
		t.Error("Outer section should restore the unmasked state")
	}
}

func TestSchedulerInvalidRateIsNoOp(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	if err := sched.Configure(TaskFunc(func() {}), BusHz, 2000, 4); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	before := sched.Config()
	calls := len(timer.calls)

	for i := 0; i < 2; i++ {
		for _, hz := range []uint32{0, 10001} {
			err := sched.Configure(TaskFunc(func() {}), BusHz, hz, 1)
			if !errors.Is(err, ErrInvalidRate) {
				t.Fatalf("rate %d: expected ErrInvalidRate, got %v", hz, err)
			}
		}
	}

	if len(timer.calls) != calls {
		t.Errorf("Invalid rate touched the timer: %v", timer.calls[calls:])
	}
	if sched.Config() != before {
		t.Errorf("Configuration changed: %+v -> %+v", before, sched.Config())
	}
	if timer.reload != before.Reload || timer.prio != before.Priority {
		t.Error("Hardware configuration changed on invalid rate")
	}
	if InterruptsMasked() {
		t.Error("Invalid rate left interrupts masked")
	}
}

func TestSchedulerPriorityClamp(t *testing.T) {
	for prio := 0; prio < 256; prio++ {
		resetInterrupts()
		timer := &mockTimer{}
		sched := NewScheduler(timer)
		if err := sched.Configure(TaskFunc(func() {}), BusHz, TickHz, uint8(prio)); err != nil {
			t.Fatalf("Configure failed: %v", err)
		}

		want := uint8(prio)
		if prio > MaxPriority {
			want = MaxPriority
		}
		if timer.prio != want || sched.Config().Priority != want {
			t.Fatalf("priority %d stored as %d/%d, want %d", prio, timer.prio, sched.Config().Priority, want)
		}
	}
}

func TestSchedulerNilTask(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	if err := sched.Configure(nil, BusHz, TickHz, 5); !errors.Is(err, ErrNoTask) {
		t.Errorf("Expected ErrNoTask, got %v", err)
	}
	if len(timer.calls) != 0 {
		t.Errorf("Nil task touched the timer: %v", timer.calls)
	}
}

func TestSchedulerStopBeforeConfigure(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	sched.Stop()
	sched.Stop()

	if len(timer.calls) != 0 {
		t.Errorf("Stop on an unclocked timer touched registers: %v", timer.calls)
	}
	if sched.State() != SchedulerUnconfigured {
		t.Errorf("Expected unconfigured, got %v", sched.State())
	}
	if InterruptsMasked() {
		t.Error("Stop left interrupts masked")
	}
}

func TestSchedulerStop(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)
	sched.Configure(TaskFunc(func() {}), BusHz, TickHz, 5)
	timer.calls = nil

	sched.Stop()

	if len(timer.calls) != 2 || timer.calls[0] != "ack" || timer.calls[1] != "disable" {
		t.Errorf("Expected ack then disable, got %v", timer.calls)
	}
	if timer.irqOn {
		t.Error("IRQ line should be disabled")
	}
	if sched.Bound() {
		t.Error("Stop should unbind the task")
	}
	if sched.State() != SchedulerDisarmed {
		t.Errorf("Expected disarmed, got %v", sched.State())
	}

	// A late interrupt after stop runs nothing.
	sched.HandleInterrupt()
	if sched.Ticks() != 0 {
		t.Errorf("Tick dispatched after stop")
	}
}

func TestSchedulerReconfigureOverwrites(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	var first, second int
	sched.Configure(TaskFunc(func() { first++ }), BusHz, 1000, 2)
	sched.Configure(TaskFunc(func() { second++ }), BusHz, 500, 9)

	sched.HandleInterrupt()

	if first != 0 || second != 1 {
		t.Errorf("Expected only the new task to run, got first=%d second=%d", first, second)
	}
	if cfg := sched.Config(); cfg.TickHz != 500 || cfg.Priority != 6 || cfg.Reload != 159999 {
		t.Errorf("Unexpected configuration %+v", cfg)
	}
}

func TestHandleInterruptAcknowledgesFirst(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	sched.Configure(TaskFunc(func() { timer.record("task") }), BusHz, TickHz, 5)
	timer.calls = nil
	timer.pending = true

	sched.HandleInterrupt()

	if len(timer.calls) != 2 || timer.calls[0] != "ack" || timer.calls[1] != "task" {
		t.Errorf("Expected ack before task, got %v", timer.calls)
	}
	if timer.pending {
		t.Error("Timeout still pending after handler")
	}
	if sched.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", sched.Ticks())
	}
}

func TestHandleInterruptReentry(t *testing.T) {
	resetInterrupts()
	timer := &mockTimer{}
	sched := NewScheduler(timer)

	runs := 0
	sched.Configure(TaskFunc(func() {
		runs++
		sched.HandleInterrupt() // would be a nested tick
	}), BusHz, TickHz, 5)

	sched.HandleInterrupt()

	if runs != 1 {
		t.Errorf("Task ran %d times, want 1", runs)
	}
	if sched.Reentries() != 1 {
		t.Errorf("Expected 1 reentry, got %d", sched.Reentries())
	}
	if sched.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", sched.Ticks())
	}
}

func TestCriticalNesting(t *testing.T) {
	resetInterrupts()

	a := EnterCritical()
	b := EnterCritical()
	b.Exit()
	if !InterruptsMasked() {
		t.Error("Inner exit must keep the outer section masked")
	}
	a.Exit()
	if InterruptsMasked() {
		t.Error("Outer exit must unmask")
	}
}
