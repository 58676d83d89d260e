package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"texas/host/capture"
	"texas/host/link"
	"texas/host/serial"
	"texas/protocol"
)

var (
	capturePort     string
	captureBaud     int
	captureMode     string
	captureOutput   string
	captureDuration time.Duration
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record the telemetry stream as CSV",
	Long: `Open the firmware's serial port and write one CSV row per received byte:
index, time offset in microseconds, kind, raw byte and decoded value. Logic
modes add one 0/1 column per captured pin. Stops after --duration or on Ctrl-C.`,
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVarP(&capturePort, "port", "p", "", "serial device (default from config)")
	captureCmd.Flags().IntVarP(&captureBaud, "baud", "b", 0, "baud rate (default from config)")
	captureCmd.Flags().StringVarP(&captureMode, "mode", "m", "", "stream mode: auto, logic:<A|B|C|E|F> or scope:<PD3|PD2|PE2|PB5>")
	captureCmd.Flags().StringVarP(&captureOutput, "output", "o", "", "CSV output, - for stdout")
	captureCmd.Flags().DurationVarP(&captureDuration, "duration", "d", 0, "stop after this long (0 = until interrupted)")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	c := cfg.Capture
	if capturePort != "" {
		cfg.Serial.Port = capturePort
	}
	if captureBaud != 0 {
		cfg.Serial.Baud = captureBaud
	}
	if captureMode != "" {
		c.Mode = captureMode
	}
	if captureOutput != "" {
		c.Output = captureOutput
	}
	if cmd.Flags().Changed("duration") {
		c.Duration = captureDuration
	}

	kind, layout, err := streamKind(c.Mode)
	if err != nil {
		return err
	}
	w, closeOut, err := newWriter(c.Output, layout)
	if err != nil {
		return err
	}
	defer closeOut()

	sc := serial.DefaultConfig(cfg.Serial.Port)
	sc.Baud = cfg.Serial.Baud
	l := link.New(sc, kind, protocol.DefaultTickHz, c.BufferSize)
	if err := l.Connect(); err != nil {
		return err
	}
	defer l.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if c.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Duration)
		defer cancel()
	}

	fmt.Fprintf(os.Stderr, "Capturing %s from %s at %d baud...\n", kind, sc.Device, sc.Baud)

	var stats capture.Stats
	err = record(ctx, l.Samples(), w, &stats)
	if flushErr := w.Flush(); err == nil {
		err = flushErr
	}

	fmt.Fprintf(os.Stderr, "Captured %s\n", stats.String())
	if dropped := l.Dropped(); dropped > 0 {
		fmt.Fprintf(os.Stderr, "Dropped %d samples (writer too slow)\n", dropped)
	}
	return err
}

// record writes samples until the channel closes or ctx ends.
func record(ctx context.Context, samples <-chan protocol.Sample, w *capture.Writer, stats *capture.Stats) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case s, ok := <-samples:
			if !ok {
				return nil
			}
			stats.Add(s)
			if err := w.Write(s); err != nil {
				return err
			}
		}
	}
}
