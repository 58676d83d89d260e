package core

import "texas/protocol"

// LogicPort describes how a port snapshot is packed into a logic analyzer
// sample: Lines selects the captured pins, Shift moves them down to bit 0.
type LogicPort struct {
	Port  Port
	Lines uint8
	Shift uint8
}

// Mask returns the field width after shifting.
func (l LogicPort) Mask() uint8 {
	return l.Lines >> l.Shift
}

// logicPorts lists the ports a logic analyzer session can capture.
var logicPorts = [...]LogicPort{
	{Port: PortA, Lines: 0xFC, Shift: 2}, // PA7-2, PA1-0 carry the UART
	{Port: PortB, Lines: 0x7F, Shift: 0}, // PB6-0
	{Port: PortC, Lines: 0xF0, Shift: 4}, // PC7-4, PC3-0 are JTAG
	{Port: PortE, Lines: 0x3F, Shift: 0}, // PE5-0
	{Port: PortF, Lines: 0x1F, Shift: 0}, // PF4-0
}

// LookupLogicPort returns the capture layout for p.
func LookupLogicPort(p Port) (LogicPort, bool) {
	for _, l := range logicPorts {
		if l.Port == p {
			return l, true
		}
	}
	return LogicPort{}, false
}

// LogicSource samples a digital port snapshot.
type LogicSource struct {
	gpio   PortDriver
	layout LogicPort
}

// NewLogicSource enables the port clock and returns its source. Digital
// reads cannot fail once the port is clocked.
func NewLogicSource(gpio PortDriver, layout LogicPort) *LogicSource {
	gpio.EnablePort(layout.Port)
	return &LogicSource{gpio: gpio, layout: layout}
}

// ReadPortSnapshot reads the captured lines, packs them into bits 6:0 and
// sets the tag bit.
func (s *LogicSource) ReadPortSnapshot() byte {
	raw := s.gpio.ReadPort(s.layout.Port, s.layout.Lines)
	return protocol.EncodeLogic(raw, s.layout.Shift, s.layout.Mask())
}

// Sample implements Source.
func (s *LogicSource) Sample() byte {
	return s.ReadPortSnapshot()
}

// Layout returns the capture layout.
func (s *LogicSource) Layout() LogicPort {
	return s.layout
}
