package tm4c123

// TM4C123GH6PM register map, the subset this firmware touches.

// System control
const (
	sysctlRIS  = 0x400FE050
	sysctlRCC  = 0x400FE060
	sysctlRCC2 = 0x400FE070

	sysctlRCGCTIMER = 0x400FE604
	sysctlRCGCGPIO  = 0x400FE608
	sysctlRCGCUART  = 0x400FE618
	sysctlRCGCADC   = 0x400FE638

	// Each peripheral-ready register sits 0x400 above its run-mode gate.
	sysctlPROffset = 0x400
	sysctlPRTIMER  = sysctlRCGCTIMER + sysctlPROffset
	sysctlPRGPIO   = sysctlRCGCGPIO + sysctlPROffset
	sysctlPRUART   = sysctlRCGCUART + sysctlPROffset
	sysctlPRADC    = sysctlRCGCADC + sysctlPROffset

	risPLLLRIS = 0x00000040

	rccXTALMask = 0x000007C0
	rccXTAL16   = 0x00000540

	rcc2USERCC2    = 0x80000000
	rcc2DIV400     = 0x40000000
	rcc2SYSDIVMask = 0x1FC00000 // SYSDIV2 plus SYSDIV2LSB
	rcc2SYSDIVPos  = 22
	rcc2PWRDN2     = 0x00002000
	rcc2BYPASS2    = 0x00000800
	rcc2OSCSRCMask = 0x00000070

	gateTimer5 = 0x20
	gateUART0  = 0x01
	gateADC1   = 0x02
)

// Clock sources
const (
	PIOSCHz  = 16000000  // reset clock
	XtalHz   = 16000000  // LaunchPad crystal
	PLLHz    = 400000000 // VCO with DIV400
	MaxBusHz = 80000000
)

// Timer5, 16/32-bit
const (
	timer5Base  = 0x40035000
	timer5CFG   = timer5Base + 0x000
	timer5TAMR  = timer5Base + 0x004
	timer5CTL   = timer5Base + 0x00C
	timer5IMR   = timer5Base + 0x018
	timer5RIS   = timer5Base + 0x01C
	timer5ICR   = timer5Base + 0x024
	timer5TAILR = timer5Base + 0x028
	timer5TAPR  = timer5Base + 0x038
	timer5End   = timer5Base + 0x1000

	timerCFG32Bit     = 0x00000000
	timerTAMRPeriodic = 0x00000002
	timerCTLTAEN      = 0x00000001
	timerIMRTATOIM    = 0x00000001
	timerICRTATOCINT  = 0x00000001
	timerRISTATORIS   = 0x00000001
)

// NVIC
const (
	// IRQTimer5A is the Timer5A interrupt number (vector 108).
	IRQTimer5A = 92

	nvicEN2   = 0xE000E108
	nvicDIS2  = 0xE000E188
	nvicPRI23 = 0xE000E45C

	nvicTimer5ABit  = 1 << (IRQTimer5A - 64)
	nvicPRI23Mask   = 0x000000FF // IRQ 92 owns byte 0
	nvicPriorityPos = 5          // three implemented priority bits
)

// UART0
const (
	uart0Base = 0x4000C000
	uart0DR   = uart0Base + 0x000
	uart0FR   = uart0Base + 0x018
	uart0IBRD = uart0Base + 0x024
	uart0FBRD = uart0Base + 0x028
	uart0LCRH = uart0Base + 0x02C
	uart0CTL  = uart0Base + 0x030
	uart0End  = uart0Base + 0x1000

	uartFRTXFF      = 0x00000020
	uartFRTXFE      = 0x00000080
	uartLCRHWLEN8   = 0x00000060
	uartLCRHFEN     = 0x00000010
	uartCTLUARTEN   = 0x00000001
	uartCTLReset    = 0x00000300 // TXE|RXE
	uartTxFIFODepth = 16
)

// ADC1, sample sequencer 3
const (
	adc1Base    = 0x40039000
	adc1ACTSS   = adc1Base + 0x000
	adc1IM      = adc1Base + 0x008
	adc1EMUX    = adc1Base + 0x014
	adc1SSPRI   = adc1Base + 0x020
	adc1SAC     = adc1Base + 0x030
	adc1SSMUX3  = adc1Base + 0x0A0
	adc1SSCTL3  = adc1Base + 0x0A4
	adc1SSFIFO3 = adc1Base + 0x0A8
	adc1PC      = adc1Base + 0xFC4
	adc1End     = adc1Base + 0x1000

	adcPC125k        = 0x1
	adcSSPRISS3First = 0x0123
	adcACTSSASEN3    = 0x8
	adcEMUXEM3Mask   = 0xF000
	adcEMUXEM3Always = 0xF000
	adcSAC8x         = 0x3
	adcSSCTL3IE0END0 = 0x6
	adcResultMask    = 0xFFF
	adcMaxChannel    = 11
	adcSettleReads   = 20
)

// GPIO, APB aperture
const (
	gpioData  = 0x000 // masked data window, 0x000-0x3FC
	gpioDIR   = 0x400
	gpioAFSEL = 0x420
	gpioDEN   = 0x51C
	gpioAMSEL = 0x528
	gpioPCTL  = 0x52C
	gpioEnd   = 0x1000

	uart0Pins     = 0x03 // PA1-0
	uart0PCTLMask = 0x000000FF
	uart0PCTL     = 0x00000011
)

var gpioBase = [...]uintptr{
	0x40004000, // A
	0x40005000, // B
	0x40006000, // C
	0x40007000, // D
	0x40024000, // E
	0x40025000, // F
}
