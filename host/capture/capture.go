// Package capture records decoded telemetry samples as CSV and keeps running
// statistics over them.
package capture

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"texas/core"
	"texas/protocol"
)

// Writer writes one CSV row per sample:
//
//	index,time_us,kind,raw,value[,<pin>...]
//
// When a logic port layout is given, each captured line also gets its own
// 0/1 column named after its pin.
type Writer struct {
	csv    *csv.Writer
	layout *core.LogicPort
	row    []string
	header bool
}

// NewWriter creates a CSV writer. layout may be nil.
func NewWriter(w io.Writer, layout *core.LogicPort) *Writer {
	return &Writer{csv: csv.NewWriter(w), layout: layout}
}

func (w *Writer) lines() int {
	if w.layout == nil {
		return 0
	}
	n := 0
	for m := w.layout.Mask(); m != 0; m >>= 1 {
		n++
	}
	return n
}

func (w *Writer) writeHeader() error {
	row := []string{"index", "time_us", "kind", "raw", "value"}
	for i := 0; i < w.lines(); i++ {
		pin := core.NewPin(w.layout.Port, w.layout.Shift+uint8(i))
		row = append(row, pin.String())
	}
	w.header = true
	return w.csv.Write(row)
}

// Write appends one sample, writing the header first if needed.
func (w *Writer) Write(s protocol.Sample) error {
	if !w.header {
		if err := w.writeHeader(); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	w.row = append(w.row[:0],
		strconv.FormatUint(s.Index, 10),
		strconv.FormatInt(s.Offset.Microseconds(), 10),
		s.Kind.String(),
		fmt.Sprintf("0x%02X", s.Raw),
		strconv.FormatUint(uint64(s.Value), 10),
	)
	for i := 0; i < w.lines(); i++ {
		if s.Bit(uint(i)) {
			w.row = append(w.row, "1")
		} else {
			w.row = append(w.row, "0")
		}
	}
	if err := w.csv.Write(w.row); err != nil {
		return fmt.Errorf("failed to write sample %d: %w", s.Index, err)
	}
	return nil
}

// Flush writes any buffered rows.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Stats summarizes a stream.
type Stats struct {
	Samples uint64
	Logic   uint64
	Scope   uint64
	Min     uint16 // scope samples, 12-bit scale
	Max     uint16
	sum     uint64

	// Toggles counts line changes between consecutive logic samples.
	Toggles uint64
	last    uint16
	hasLast bool
}

// Add accounts for one sample.
func (st *Stats) Add(s protocol.Sample) {
	st.Samples++
	switch s.Kind {
	case protocol.KindLogic:
		st.Logic++
		if st.hasLast {
			for diff := st.last ^ s.Value; diff != 0; diff &= diff - 1 {
				st.Toggles++
			}
		}
		st.last = s.Value
		st.hasLast = true
	default:
		if st.Scope == 0 || s.Value < st.Min {
			st.Min = s.Value
		}
		if st.Scope == 0 || s.Value > st.Max {
			st.Max = s.Value
		}
		st.Scope++
		st.sum += uint64(s.Value)
	}
}

// Mean returns the mean scope value, 0 when there were none.
func (st *Stats) Mean() float64 {
	if st.Scope == 0 {
		return 0
	}
	return float64(st.sum) / float64(st.Scope)
}

func (st *Stats) String() string {
	s := fmt.Sprintf("%d samples", st.Samples)
	if st.Scope > 0 {
		s += fmt.Sprintf(", scope min=%d max=%d mean=%.1f", st.Min, st.Max, st.Mean())
	}
	if st.Logic > 0 {
		s += fmt.Sprintf(", logic toggles=%d", st.Toggles)
	}
	return s
}
