package core

import (
	"errors"
	"testing"
)

func TestComputeBaudDivisor(t *testing.T) {
	testCases := []struct {
		name     string
		busHz    uint32
		baud     uint32
		integer  uint16
		fraction uint8
	}{
		{"80MHz 115200", 80000000, 115200, 43, 26},
		{"80MHz 9600", 80000000, 9600, 520, 53},
		{"16MHz 115200", 16000000, 115200, 8, 44},
		{"50MHz 115200", 50000000, 115200, 27, 8},
		// bus*4/baud = 100.5 exactly: the tie goes to the even 100
		{"tie rounds to even", 2010, 80, 1, 36},
		// bus*4/baud = 101.5 exactly: the tie goes to the even 102
		{"odd tie rounds up", 2030, 80, 1, 38},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			div, err := ComputeBaudDivisor(tc.busHz, tc.baud)
			if err != nil {
				t.Fatalf("ComputeBaudDivisor failed: %v", err)
			}
			if div.Integer != tc.integer || div.Fraction != tc.fraction {
				t.Errorf("Got %d+%d/64, want %d+%d/64", div.Integer, div.Fraction, tc.integer, tc.fraction)
			}
		})
	}
}

func TestComputeBaudDivisorInvalid(t *testing.T) {
	for _, baud := range []uint32{0, 10000000} {
		if _, err := ComputeBaudDivisor(BusHz, baud); !errors.Is(err, ErrInvalidBaud) {
			t.Errorf("baud %d: expected ErrInvalidBaud, got %v", baud, err)
		}
	}
}

func TestActualBaud(t *testing.T) {
	div, _ := ComputeBaudDivisor(BusHz, BaudRate)
	actual := div.ActualBaud(BusHz)
	if actual < 115100 || actual > 115300 {
		t.Errorf("Actual baud %d too far from %d", actual, BaudRate)
	}
}

func TestTransport(t *testing.T) {
	uart := &mockUART{}
	tr := NewTransport(uart)

	if err := tr.Init(BusHz, BaudRate); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if uart.configured != 1 || uart.div != (BaudDivisor{43, 26}) {
		t.Errorf("Unexpected UART configuration %+v", uart.div)
	}
	if tr.Divisor() != uart.div {
		t.Errorf("Transport divisor %+v", tr.Divisor())
	}

	tr.Send(0x12)
	tr.Send(0xFF)
	if len(uart.sent) != 2 || uart.sent[0] != 0x12 || uart.sent[1] != 0xFF {
		t.Errorf("Unexpected bytes %v", uart.sent)
	}

	if err := tr.Init(BusHz, 0); !errors.Is(err, ErrInvalidBaud) {
		t.Errorf("Expected ErrInvalidBaud, got %v", err)
	}
	if uart.configured != 1 {
		t.Error("Invalid baud reached the UART")
	}
}
