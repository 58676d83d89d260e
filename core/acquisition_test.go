package core

import (
	"errors"
	"testing"
)

func TestReadPortSnapshot(t *testing.T) {
	testCases := []struct {
		port  Port
		shift uint8
		mask  uint8
	}{
		{PortA, 2, 0x3F},
		{PortB, 0, 0x7F},
		{PortC, 4, 0x0F},
		{PortE, 0, 0x3F},
		{PortF, 0, 0x1F},
	}

	for _, tc := range testCases {
		t.Run(tc.port.String(), func(t *testing.T) {
			layout, ok := LookupLogicPort(tc.port)
			if !ok {
				t.Fatalf("No layout for %v", tc.port)
			}
			if layout.Shift != tc.shift || layout.Mask() != tc.mask {
				t.Fatalf("Layout %+v, want shift %d mask 0x%02X", layout, tc.shift, tc.mask)
			}

			gpio := &mockGPIO{}
			src := NewLogicSource(gpio, layout)
			if len(gpio.enabled) != 1 || gpio.enabled[0] != tc.port {
				t.Errorf("Expected %v clock enabled, got %v", tc.port, gpio.enabled)
			}

			for v := 0; v < 256; v++ {
				gpio.inputs[tc.port] = uint8(v)
				// Lines outside the capture set read as zero on the
				// masked data address, so the expected value uses the
				// layout's line mask first.
				raw := uint8(v) & layout.Lines
				want := (raw>>tc.shift)&tc.mask | 0x80
				got := src.ReadPortSnapshot()
				if got != want {
					t.Fatalf("v=0x%02X: got 0x%02X, want 0x%02X", v, got, want)
				}
				if got&0x80 == 0 {
					t.Fatalf("v=0x%02X: tag bit missing", v)
				}
			}
		})
	}
}

func TestLookupLogicPortD(t *testing.T) {
	if _, ok := LookupLogicPort(PortD); ok {
		t.Error("Port D is not a logic analyzer port")
	}
}

func TestInitChannel(t *testing.T) {
	testCases := []struct {
		pin     Pin
		channel uint8
	}{
		{PD3, 4},
		{PD2, 5},
		{PE2, 1},
		{PB5, 11},
	}

	for _, tc := range testCases {
		t.Run(tc.pin.String(), func(t *testing.T) {
			adc := &mockADC{}
			src, err := InitChannel(adc, tc.pin)
			if err != nil {
				t.Fatalf("InitChannel failed: %v", err)
			}
			if len(adc.configured) != 1 {
				t.Fatalf("Expected one channel configuration, got %d", len(adc.configured))
			}
			ch := adc.configured[0]
			if ch.Channel != tc.channel || ch.Pin != tc.pin {
				t.Errorf("Configured %+v, want pin %v channel %d", ch, tc.pin, tc.channel)
			}
			if ch.Port() != tc.pin.Port() || ch.Mask() != tc.pin.Mask() {
				t.Errorf("Port/mask mismatch for %v", tc.pin)
			}
			if src.Channel() != ch {
				t.Errorf("Source reports %+v", src.Channel())
			}
		})
	}
}

func TestInitChannelUnsupportedPin(t *testing.T) {
	for _, pin := range []Pin{NewPin(PortA, 0), NewPin(PortF, 4), NewPin(PortD, 7)} {
		adc := &mockADC{}
		_, err := InitChannel(adc, pin)
		if !errors.Is(err, ErrUnsupportedPin) {
			t.Errorf("%v: expected ErrUnsupportedPin, got %v", pin, err)
		}
		if len(adc.configured) != 0 {
			t.Errorf("%v: driver touched on unsupported pin", pin)
		}
	}
}

func TestReadAveragedSample(t *testing.T) {
	adc := &mockADC{values: []ADCValue{0, 15, 16, 2048, 4095, 0x123}}
	src, err := InitChannel(adc, PD3)
	if err != nil {
		t.Fatalf("InitChannel failed: %v", err)
	}

	for _, r := range adc.values {
		got := src.Sample()
		if got != byte(r>>4) {
			t.Errorf("Result %d: got 0x%02X, want 0x%02X", r, got, byte(r>>4))
		}
	}
}

func TestSampleTask(t *testing.T) {
	uart := &mockUART{}
	gpio := &mockGPIO{}
	gpio.inputs[PortB] = 0x2A

	layout, _ := LookupLogicPort(PortB)
	task := &sampleTask{
		source:    NewLogicSource(gpio, layout),
		transport: NewTransport(uart),
	}
	task.Run()

	if len(uart.sent) != 1 || uart.sent[0] != 0xAA {
		t.Errorf("Expected [0xAA], got %v", uart.sent)
	}
}

func TestPinNames(t *testing.T) {
	if PD3.String() != "PD3" || PB5.String() != "PB5" {
		t.Errorf("Unexpected pin names %s %s", PD3, PB5)
	}
	if PE2.Port() != PortE || PE2.Bit() != 2 || PE2.Mask() != 0x04 {
		t.Errorf("PE2 decodes wrong")
	}
}
