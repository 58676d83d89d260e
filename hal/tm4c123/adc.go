package tm4c123

import "texas/core"

// ADC1 converts one channel continuously on sequencer 3 with 8x hardware
// averaging. Sequencer 3 holds a single step, so the FIFO always carries
// the most recent averaged result.
type ADC1 struct {
	bus    Bus
	sysctl *SysCtl
	gpio   *GPIO
}

// NewADC1 returns the converter driver.
func NewADC1(bus Bus, sysctl *SysCtl, gpio *GPIO) *ADC1 {
	return &ADC1{bus: bus, sysctl: sysctl, gpio: gpio}
}

// ConfigureChannel implements core.ADCDriver.
func (a *ADC1) ConfigureChannel(ch core.AnalogChannel) error {
	if ch.Channel > adcMaxChannel {
		return core.ErrUnsupportedPin
	}
	if err := a.sysctl.enable(sysctlRCGCADC, gateADC1); err != nil {
		return err
	}
	if err := a.gpio.ConfigureAnalog(ch.Port(), ch.Mask()); err != nil {
		return err
	}
	// The converter needs a few bus cycles after its gate before the
	// sample-rate register accepts writes.
	for i := 0; i < adcSettleReads; i++ {
		_ = a.bus.Load(sysctlPRADC)
	}

	b := a.bus
	b.Store(adc1PC, adcPC125k)
	b.Store(adc1SSPRI, adcSSPRISS3First)
	clearBits(b, adc1ACTSS, adcACTSSASEN3)
	replaceBits(b, adc1EMUX, adcEMUXEM3Always, adcEMUXEM3Mask)
	b.Store(adc1SAC, adcSAC8x)
	b.Store(adc1SSMUX3, uint32(ch.Channel))
	b.Store(adc1SSCTL3, adcSSCTL3IE0END0)
	b.Store(adc1IM, 0)
	setBits(b, adc1ACTSS, adcACTSSASEN3)
	return nil
}

// Latest implements core.ADCDriver.
func (a *ADC1) Latest() core.ADCValue {
	return core.ADCValue(a.bus.Load(adc1SSFIFO3) & adcResultMask)
}

var _ core.ADCDriver = (*ADC1)(nil)
