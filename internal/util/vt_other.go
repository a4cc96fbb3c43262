//go:build !windows

package util

import "os"

// Unix terminals understand ANSI sequences natively.
func enableVirtualTerminal(*os.File) bool {
	return true
}
