//go:build tm4c123

package main

import "texas/core"

// modeName selects the acquisition mode at build time:
//
//	tinygo flash -target ./targets/tm4c123/tm4c123.json \
//	    -ldflags "-X main.modeName=logic:B" ./targets/tm4c123
//
// Accepted values are those of core.ParseMode.
var modeName = "scope:PD3"

// SelectMode returns the mode the firmware streams at power-up. An
// unparseable name falls back to the PD3 scope.
func SelectMode() core.Mode {
	m, err := core.ParseMode(modeName)
	if err != nil {
		return core.ScopePD3
	}
	return m
}
