// Package protocol implements the TExaS display wire format: one byte per
// tick, no framing, no checksum. The top bit tags logic analyzer samples.
package protocol

// Version represents the texas firmware version
const Version = "0.3.0"

// Wire constants
const (
	DefaultBaudRate = 115200 // 8N1
	DefaultTickHz   = 10000  // one byte every 100us

	TagLogic   = 0x80 // bit 7 set on every logic analyzer byte
	LogicMask  = 0x7F // bits 6:0 carry captured lines
	ScopeShift = 4    // scope bytes are the top 8 bits of a 12-bit result

	ADCBits = 12
	ADCMax  = 4095
)

// Kind says how a byte on the wire should be interpreted.
type Kind uint8

const (
	// KindAuto classifies each byte by its tag bit. Scope bytes at or above
	// half scale carry bit 7 naturally, so auto mode is a heuristic only.
	KindAuto Kind = iota
	KindLogic
	KindScope
)

func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindLogic:
		return "logic"
	case KindScope:
		return "scope"
	default:
		return "unknown"
	}
}

// EncodeLogic packs a port snapshot into a logic analyzer byte.
func EncodeLogic(raw, shift, mask uint8) byte {
	return (raw>>shift)&mask&LogicMask | TagLogic
}

// EncodeScope packs a 12-bit conversion result into a scope byte.
func EncodeScope(result uint16) byte {
	return byte(result >> ScopeShift)
}

// Classify returns the kind suggested by the tag bit.
func Classify(b byte) Kind {
	if b&TagLogic != 0 {
		return KindLogic
	}
	return KindScope
}

// ScopeValue expands a scope byte back to the 12-bit scale. The low four
// bits were discarded on the device.
func ScopeValue(b byte) uint16 {
	return uint16(b) << ScopeShift
}

// LogicLines strips the tag bit from a logic analyzer byte.
func LogicLines(b byte) uint8 {
	return b & LogicMask
}
