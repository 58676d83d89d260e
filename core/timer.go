package core

// ReloadValue returns the countdown reload for a periodic timer clocked at
// busHz firing tickHz times a second: busHz/tickHz - 1, rounded down.
func ReloadValue(busHz, tickHz uint32) (uint32, error) {
	if tickHz == 0 || tickHz > MaxTickHz {
		return 0, ErrInvalidRate
	}
	period := busHz / tickHz
	if period < 2 {
		// Reload would be zero (or wrap); the timer could never fire.
		return 0, ErrInvalidRate
	}
	return period - 1, nil
}

// ClampPriority limits an interrupt priority to 0..MaxPriority.
func ClampPriority(priority uint8) uint8 {
	if priority > MaxPriority {
		return MaxPriority
	}
	return priority
}

// TickPeriodUS converts a tick rate to its period in microseconds.
func TickPeriodUS(tickHz uint32) uint32 {
	if tickHz == 0 {
		return 0
	}
	return 1000000 / tickHz
}

// TicksPerSecond converts a reload value back to a tick rate.
func TicksPerSecond(busHz, reload uint32) uint32 {
	return busHz / (reload + 1)
}
