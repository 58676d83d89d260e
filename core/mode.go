package core

import "strings"

// ModeKind separates the two acquisition families.
type ModeKind uint8

const (
	ModeLogic ModeKind = iota + 1
	ModeScope
)

// Mode is an acquisition mode: a logic analyzer on one port or a scope on
// one analog pin. Build it with LogicAnalyzer or Scope.
type Mode struct {
	kind ModeKind
	port Port
	pin  Pin
}

// LogicAnalyzer captures a port snapshot every tick.
func LogicAnalyzer(p Port) Mode {
	return Mode{kind: ModeLogic, port: p}
}

// Scope sends the averaged analog level of pin every tick.
func Scope(pin Pin) Mode {
	return Mode{kind: ModeScope, pin: pin}
}

// The seven supported modes.
var (
	LogicPortA = LogicAnalyzer(PortA)
	LogicPortB = LogicAnalyzer(PortB)
	LogicPortC = LogicAnalyzer(PortC)
	LogicPortE = LogicAnalyzer(PortE)
	LogicPortF = LogicAnalyzer(PortF)

	ScopePD3 = Scope(PD3)
	ScopePD2 = Scope(PD2)
	ScopePE2 = Scope(PE2)
	ScopePB5 = Scope(PB5)
)

// Kind returns the mode family.
func (m Mode) Kind() ModeKind { return m.kind }

// Port returns the captured port of a logic analyzer mode.
func (m Mode) Port() Port { return m.port }

// Pin returns the analog pin of a scope mode.
func (m Mode) Pin() Pin { return m.pin }

// IsLogic reports whether m emits tagged logic analyzer bytes.
func (m Mode) IsLogic() bool { return m.kind == ModeLogic }

func (m Mode) String() string {
	switch m.kind {
	case ModeLogic:
		return "logic:" + m.port.String()[1:]
	case ModeScope:
		return "scope:" + m.pin.String()
	default:
		return "none"
	}
}

// ParseMode accepts "logic:A".."logic:F" and "scope:PD3"; a bare "scope"
// means PD3.
func ParseMode(s string) (Mode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	kind, arg, _ := strings.Cut(s, ":")

	switch kind {
	case "LOGIC":
		arg = strings.TrimPrefix(arg, "P")
		if len(arg) != 1 || arg[0] < 'A' || arg[0] >= 'A'+byte(NumPorts) {
			return Mode{}, ErrUnknownMode
		}
		m := LogicAnalyzer(Port(arg[0] - 'A'))
		if _, ok := LookupLogicPort(m.port); !ok {
			return Mode{}, ErrUnknownMode
		}
		return m, nil
	case "SCOPE":
		if arg == "" {
			return ScopePD3, nil
		}
		if len(arg) != 3 || arg[0] != 'P' || arg[1] < 'A' || arg[1] >= 'A'+byte(NumPorts) ||
			arg[2] < '0' || arg[2] > '7' {
			return Mode{}, ErrUnknownMode
		}
		return Scope(NewPin(Port(arg[1]-'A'), arg[2]-'0')), nil
	default:
		return Mode{}, ErrUnknownMode
	}
}
