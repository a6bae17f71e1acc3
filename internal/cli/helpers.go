package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Global flags (will be set from cmd package)
var (
	quiet   bool
	noColor bool

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc
}

// SetOutput redirects messages, mainly for tests
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// NoColor reports whether colored output was disabled
func NoColor() bool {
	return noColor
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...any) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stdout, "✓ %s\n", msg)
	} else {
		fmt.Fprintf(stdout, "OK: %s\n", msg)
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...any) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stdout, "ℹ %s\n", msg)
	} else {
		fmt.Fprintf(stdout, "INFO: %s\n", msg)
	}
}

// PrintWarning prints a warning message to stderr
func PrintWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "ERROR: %s\n", msg)
	}
}
