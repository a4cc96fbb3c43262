// Package util holds small platform helpers for the command line tool.
package util

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether ANSI colour sequences may be written to f.
// NO_COLOR disables colour regardless of the terminal.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return enableVirtualTerminal(f)
}

// TerminalWidth returns the column count of the terminal behind f, or 0 if f is not a terminal.
func TerminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return w
}
