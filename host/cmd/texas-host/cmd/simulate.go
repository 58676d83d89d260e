package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"texas/core"
	"texas/host/capture"
	"texas/host/sim"
	"texas/protocol"
)

var (
	simMode      string
	simTicks     int
	simFrequency float32
	simAmplitude float32
	simOffset    float32
	simLogic     uint8
	simOutput    string
	simRaw       string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the firmware session on a simulated TM4C123",
	Long: `Start a session on a simulated board (PLL, Timer5A, ADC1, UART0 and GPIO
modeled at register level), let the timer tick, and decode the bytes that come
out of UART0. Scope modes sample a sine wave; logic modes see a counter on the
port lines.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simMode, "mode", "m", "", "logic:<A|B|C|E|F> or scope:<PD3|PD2|PE2|PB5> (default from config)")
	simulateCmd.Flags().IntVarP(&simTicks, "ticks", "n", 0, "timer ticks to run (default from config)")
	simulateCmd.Flags().Float32Var(&simFrequency, "freq", 0, "analog input frequency in Hz")
	simulateCmd.Flags().Float32Var(&simAmplitude, "amp", 0, "analog input amplitude, fraction of full scale")
	simulateCmd.Flags().Float32Var(&simOffset, "offset", 0, "analog input offset, fraction of full scale")
	simulateCmd.Flags().Uint8Var(&simLogic, "logic", 0, "initial port lines for logic modes")
	simulateCmd.Flags().StringVarP(&simOutput, "output", "o", "", "write decoded samples as CSV, - for stdout")
	simulateCmd.Flags().StringVar(&simRaw, "raw", "", "write the raw byte stream to a file")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	sc := cfg.Simulate
	flags := cmd.Flags()
	if simMode != "" {
		sc.Mode = simMode
	}
	if simTicks > 0 {
		sc.Ticks = simTicks
	}
	if flags.Changed("freq") {
		sc.Frequency = simFrequency
	}
	if flags.Changed("amp") {
		sc.Amplitude = simAmplitude
	}
	if flags.Changed("offset") {
		sc.Offset = simOffset
	}
	if flags.Changed("logic") {
		sc.Logic = simLogic
	}

	mode, err := core.ParseMode(sc.Mode)
	if err != nil {
		return fmt.Errorf("invalid mode %q: %w", sc.Mode, err)
	}
	kind, layout, err := streamKind(sc.Mode)
	if err != nil {
		return err
	}

	res, err := sim.Run(sim.Options{
		Mode:      mode,
		Ticks:     sc.Ticks,
		Frequency: sc.Frequency,
		Amplitude: sc.Amplitude,
		Offset:    sc.Offset,
		Logic:     sc.Logic,
	})
	if err != nil {
		return err
	}

	if simRaw != "" {
		if err := os.WriteFile(simRaw, res.Stream, 0644); err != nil {
			return fmt.Errorf("failed to write raw stream: %w", err)
		}
	}

	var stats capture.Stats
	dec := protocol.NewDecoder(kind, core.TickHz)
	var w *capture.Writer
	if simOutput != "" {
		var closeOut func() error
		w, closeOut, err = newWriter(simOutput, layout)
		if err != nil {
			return err
		}
		defer closeOut()
	}
	for _, b := range res.Stream {
		s := dec.Decode(b)
		stats.Add(s)
		if w != nil {
			if err := w.Write(s); err != nil {
				return err
			}
		}
	}
	if w != nil {
		if err := w.Flush(); err != nil {
			return err
		}
	}

	out := os.Stderr
	fmt.Fprintf(out, "Mode:      %s\n", mode)
	fmt.Fprintf(out, "Bus:       %d Hz, reload %d\n", res.BusHz, res.Reload)
	fmt.Fprintf(out, "UART:      IBRD=%d FBRD=%d (%d baud)\n",
		res.Divisor.Integer, res.Divisor.Fraction, res.Divisor.ActualBaud(res.BusHz))
	fmt.Fprintf(out, "Ticks:     %d (%d interrupts, %d re-entries)\n", res.Ticks, res.Deliveries, res.Reentries)
	fmt.Fprintf(out, "Overruns:  %d\n", res.Overruns)
	fmt.Fprintf(out, "Stream:    %s\n", stats.String())
	if verbose {
		core.DumpEvents()
	}
	return nil
}
