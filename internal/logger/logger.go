package logger

import (
	"github.com/fatih/color" // Colored console output for log levels
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level.

// Info logs informational messages in green color.
// Green is used for success or normal progress lines.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Warnings never change the process exit status; they are aggregated into
// a summary at the end of a run.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Ok logs the result of a satisfied or completed verification check in
// bold green, so the final checklist stands out from ordinary info lines.
var Ok = color.New(color.FgGreen, color.Bold).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is assigned dynamically during Init based on the debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger package, enabling or disabling debug logging.
// When disabled, Debug is a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

func init() {
	// Callers may log before Init runs (e.g. config loading in tests).
	Init(false)
}
