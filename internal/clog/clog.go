// Package clog provides the leveled, colored console logging used across
// packex: [INFO] cyan, [WARN] yellow, [OK] green, [ERROR] red, [DEBUG]
// magenta. Debug output is off unless enabled with SetVerbose.
package clog

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	infoTag  = color.New(color.FgCyan).Sprint("[INFO]")
	warnTag  = color.New(color.FgYellow).Sprint("[WARN]")
	okTag    = color.New(color.FgGreen).Sprint("[OK]")
	errorTag = color.New(color.FgRed).Sprint("[ERROR]")
	debugTag = color.New(color.FgMagenta).Sprint("[DEBUG]")

	verbose bool
)

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) { verbose = v }

// Infof logs an informational message.
func Infof(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoTag, fmt.Sprintf(format, args...))
}

// Warnf logs a warning.
func Warnf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warnTag, fmt.Sprintf(format, args...))
}

// Okf logs a success message.
func Okf(format string, args ...interface{}) {
	fmt.Printf("%s   %s\n", okTag, fmt.Sprintf(format, args...))
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", errorTag, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message when verbose output is enabled.
func Debugf(format string, args ...interface{}) {
	if !verbose {
		return
	}
	fmt.Printf("%s %s\n", debugTag, fmt.Sprintf(format, args...))
}
