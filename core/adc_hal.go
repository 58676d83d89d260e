package core

// ADCValue is a raw 12-bit conversion result (0-4095).
type ADCValue uint16

// ADCMax is the full-scale conversion result.
const ADCMax ADCValue = 4095

// ADCDriver is the chip side of the analog Acquisition Source. One sequencer
// is dedicated to the session channel.
type ADCDriver interface {
	// ConfigureChannel switches the pin to its analog function, dedicates the
	// sequencer to ch with 8-sample hardware averaging and arms it for
	// continuous conversion.
	ConfigureChannel(ch AnalogChannel) error

	// Latest returns the most recent completed conversion. It must not wait.
	Latest() ADCValue
}
