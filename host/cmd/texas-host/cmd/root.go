package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"texas/core"
	"texas/host/capture"
	"texas/host/config"
	"texas/protocol"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "texas-host",
	Short: "Host side of the TM4C123 scope and logic analyzer",
	Long: `Receives the one-byte-per-tick telemetry stream sent by the TM4C123 firmware
at 10 kHz over 115200 baud, decodes it, and records it as CSV. The same firmware
session code can be run against a simulated board.

Examples:
  texas-host ports                                    # List serial ports
  texas-host capture --port /dev/ttyACM0 --mode scope:PD3 -o scope.csv
  texas-host simulate --mode logic:B --ticks 2000     # Run the firmware on a simulated board`,
	Version: protocol.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose {
			core.SetDebugWriter(func(s string) { log.Println(s) })
			core.SetDebugEnabled(true)
		}
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "texas.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// streamKind resolves a mode flag into the decoder kind and, for logic
// modes, the line layout. "auto" classifies each byte by its tag bit.
func streamKind(mode string) (protocol.Kind, *core.LogicPort, error) {
	if strings.EqualFold(strings.TrimSpace(mode), "auto") {
		return protocol.KindAuto, nil, nil
	}
	m, err := core.ParseMode(mode)
	if err != nil {
		return protocol.KindAuto, nil, fmt.Errorf("invalid mode %q: %w", mode, err)
	}
	if !m.IsLogic() {
		return protocol.KindScope, nil, nil
	}
	layout, _ := core.LookupLogicPort(m.Port())
	return protocol.KindLogic, &layout, nil
}

// openOutput returns the CSV destination; "-" is stdout.
func openOutput(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}

func newWriter(path string, layout *core.LogicPort) (*capture.Writer, func() error, error) {
	f, closeFn, err := openOutput(path)
	if err != nil {
		return nil, nil, err
	}
	return capture.NewWriter(f, layout), closeFn, nil
}
