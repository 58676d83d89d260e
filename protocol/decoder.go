package protocol

import "time"

// Sample is one decoded wire byte.
type Sample struct {
	Index  uint64        // position in the stream
	Offset time.Duration // Index times the tick period
	Kind   Kind
	Raw    byte
	Value  uint16 // scope: 12-bit scale; logic: captured lines
}

// Bit returns line n of a logic sample.
func (s Sample) Bit(n uint) bool {
	return s.Kind == KindLogic && s.Value&(1<<n) != 0
}

// Decoder turns the byte stream into samples. The wire has no framing, so the
// only timing information is the fixed tick cadence.
type Decoder struct {
	kind   Kind
	period time.Duration
	index  uint64
}

// NewDecoder creates a decoder for a stream of the given kind sent at tickHz.
// A zero tickHz selects DefaultTickHz.
func NewDecoder(kind Kind, tickHz uint32) *Decoder {
	if tickHz == 0 {
		tickHz = DefaultTickHz
	}
	return &Decoder{
		kind:   kind,
		period: time.Second / time.Duration(tickHz),
	}
}

// Decode converts one byte and advances the stream position.
func (d *Decoder) Decode(b byte) Sample {
	kind := d.kind
	if kind == KindAuto {
		kind = Classify(b)
	}

	s := Sample{
		Index:  d.index,
		Offset: time.Duration(d.index) * d.period,
		Kind:   kind,
		Raw:    b,
	}
	if kind == KindLogic {
		s.Value = uint16(LogicLines(b))
	} else {
		s.Value = ScopeValue(b)
	}

	d.index++
	return s
}

// DecodeAll decodes a chunk, appending to dst.
func (d *Decoder) DecodeAll(dst []Sample, data []byte) []Sample {
	for _, b := range data {
		dst = append(dst, d.Decode(b))
	}
	return dst
}

// Period returns the tick period assumed by the decoder.
func (d *Decoder) Period() time.Duration {
	return d.period
}

// Reset restarts the stream position at zero.
func (d *Decoder) Reset() {
	d.index = 0
}
