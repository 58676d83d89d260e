package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures a session event for post-mortem analysis
type Event struct {
	Type   uint8  // Event type code
	Seq    uint32 // Running event number
	Value1 uint32 // Context-dependent value
	Value2 uint32 // Context-dependent value
}

// Event type codes
const (
	EvtSessionStart = 1 // Value1 mode kind, Value2 bus Hz
	EvtSessionStop  = 2 // Value1 ticks dispatched
	EvtTimerArmed   = 3 // Value1 tick Hz, Value2 reload
	EvtTimerStopped = 4 // Value1 ticks dispatched
	EvtRateRejected = 5 // Value1 tick Hz, Value2 bus Hz
	EvtPinRejected  = 6 // Value1 pin
)

const (
	EventRingSize = 16 // Keep last 16 events
)

var (
	// debugPrintln is the global debug print function (can be set by platform code).
	// The UART carries the sample stream, so targets leave it silent.
	debugPrintln DebugWriter = func(s string) {}

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]Event
	eventRingHead uint8
	eventSeq      uint32
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Foreground only; never call it from a tick task.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures an event in the ring buffer without allocating
func RecordEvent(eventType uint8, value1, value2 uint32) {
	idx := eventRingHead
	eventSeq++
	eventRing[idx] = Event{
		Type:   eventType,
		Seq:    eventSeq,
		Value1: value1,
		Value2: value2,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first
func Events() []Event {
	out := make([]Event, 0, EventRingSize)
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(eventRingHead+i)%EventRingSize]
		if evt.Type != 0 {
			out = append(out, evt)
		}
	}
	return out
}

// EventName returns a short label for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtSessionStart:
		return "SESSION_START"
	case EvtSessionStop:
		return "SESSION_STOP"
	case EvtTimerArmed:
		return "TIMER_ARMED"
	case EvtTimerStopped:
		return "TIMER_STOPPED"
	case EvtRateRejected:
		return "RATE_REJECTED"
	case EvtPinRejected:
		return "PIN_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// DumpEvents writes the event ring through the debug writer
func DumpEvents() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Event Ring Dump ===")
	for _, evt := range Events() {
		line := "[EVENTS] " + EventName(evt.Type) +
			" seq=" + utoa(evt.Seq) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2)
		if evt.Type == EvtPinRejected {
			line += " pin=0x" + hex8(uint8(evt.Value1))
		}
		debugPrintln(line)
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEvents clears the event ring
func ClearEvents() {
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
	eventSeq = 0
}
