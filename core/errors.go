package core

import "errors"

// Configuration errors. They are returned synchronously and leave the
// hardware untouched, so the caller can retry with corrected parameters.
var (
	ErrInvalidRate    = errors.New("tick frequency must be 1..10000 Hz with a non-zero reload")
	ErrUnsupportedPin = errors.New("pin has no analog channel")
	ErrAlreadyRunning = errors.New("session already running")
	ErrUnknownMode    = errors.New("unknown acquisition mode")
	ErrInvalidBaud    = errors.New("baud rate out of range for bus clock")
	ErrNoTask         = errors.New("no task to bind")
)
