//go:build windows

package util

import (
	"log/slog"
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal switches the console behind f into VT mode so ANSI colours render.
func enableVirtualTerminal(f *os.File) bool {
	h := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		slog.Debug("EnableVirtualTerminal: console refused VT mode", "error", err)
		return false
	}
	return true
}
