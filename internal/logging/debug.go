package logging

import (
	"fmt"
	"os"
)

// verbose is toggled by the --verbose flag on the root command.
var verbose bool

// SetVerbose enables or disables verbose output for this process
func SetVerbose(v bool) {
	verbose = v
}

// DebugEnabled returns true if debug output is enabled via the PYTICK_DEBUG
// environment variable or the --verbose flag
func DebugEnabled() bool {
	return verbose || os.Getenv("PYTICK_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}
