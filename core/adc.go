package core

import "texas/protocol"

// Hardware averaging applied by the sequencer. The result register lags the
// pin by at most one averaging window.
const (
	ADCAveragingLog2 = 3 // 8 samples
	ADCAveraging     = 1 << ADCAveragingLog2
)

// AnalogChannel maps an analog capable pin to its converter input.
type AnalogChannel struct {
	Pin     Pin
	Channel uint8 // AINn
}

// Port returns the GPIO register set that owns the pin.
func (c AnalogChannel) Port() Port { return c.Pin.Port() }

// Mask returns the enable mask for the pin within its port registers.
func (c AnalogChannel) Mask() uint8 { return c.Pin.Mask() }

// analogChannels is the table the single channel routine is driven by.
var analogChannels = [...]AnalogChannel{
	{Pin: PD3, Channel: 4},
	{Pin: PD2, Channel: 5},
	{Pin: PE2, Channel: 1},
	{Pin: PB5, Channel: 11},
}

// LookupAnalogChannel returns the converter input for pin.
func LookupAnalogChannel(pin Pin) (AnalogChannel, bool) {
	for _, c := range analogChannels {
		if c.Pin == pin {
			return c, true
		}
	}
	return AnalogChannel{}, false
}

// ScopeSource samples the averaged result of a continuously converting
// channel.
type ScopeSource struct {
	adc ADCDriver
	ch  AnalogChannel
}

// InitChannel dedicates the converter to pin. It fails with
// ErrUnsupportedPin before touching any register when the pin has no
// analog channel.
func InitChannel(adc ADCDriver, pin Pin) (*ScopeSource, error) {
	ch, ok := LookupAnalogChannel(pin)
	if !ok {
		RecordEvent(EvtPinRejected, uint32(pin), 0)
		return nil, ErrUnsupportedPin
	}
	if err := adc.ConfigureChannel(ch); err != nil {
		return nil, err
	}
	return &ScopeSource{adc: adc, ch: ch}, nil
}

// ReadAveragedSample returns the top 8 bits of the latest conversion. It
// never waits: continuous triggering keeps the result register fresh.
func (s *ScopeSource) ReadAveragedSample() byte {
	return protocol.EncodeScope(uint16(s.adc.Latest()))
}

// Sample implements Source.
func (s *ScopeSource) Sample() byte {
	return s.ReadAveragedSample()
}

// Channel returns the configured channel.
func (s *ScopeSource) Channel() AnalogChannel {
	return s.ch
}
