package logger

import "os"

// IsInteractive reports whether stdout is attached to a terminal.
// Used to decide when to use interactive UI elements like spinners.
func IsInteractive() bool {
	// Best-effort detection without external deps: if stdout is not a character
	// device or is redirected (common in tests/CI), avoid interactive UI.
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	if (fi.Mode() & os.ModeCharDevice) == 0 {
		return false
	}
	return true
}
