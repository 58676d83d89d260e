package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"texas/host/serial"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available serial ports",
	Long: `List the serial ports on this host. The LaunchPad's debug bridge shows up as a
USB CDC port (VID:PID 1CBE:00FD); UART0 of the firmware is routed through it.`,
	RunE: runPorts,
}

func init() {
	rootCmd.AddCommand(portsCmd)
}

func runPorts(cmd *cobra.Command, args []string) error {
	ports, err := serial.Ports()
	if err != nil {
		return err
	}

	if len(ports) == 0 {
		fmt.Println("No serial ports found.")
		return nil
	}

	fmt.Println("Serial ports:")
	for _, p := range ports {
		fmt.Printf("  - %s\n", p.Description)
	}
	return nil
}
