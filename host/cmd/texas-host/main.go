// Command texas-host receives the TM4C123 telemetry stream, records it, and
// runs the firmware against a simulated board.
package main

import "texas/host/cmd/texas-host/cmd"

func main() {
	cmd.Execute()
}
