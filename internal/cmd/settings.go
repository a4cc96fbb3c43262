package cmd

import (
	"io"
	"os"

	"github.com/Alia5/keymatrix/internal/util"
)

// Log holds logging flags shared by every command.
type Log struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info"`
	File  string `help:"Also write logs to this file" type:"path"`
}

// Settings are the global options that can also be set from a config file.
type Settings struct {
	Log   Log    `embed:"" prefix:"log."`
	Color string `help:"Colour output" enum:"auto,always,never" default:"auto"`
}

// Console is where commands write their results.
type Console struct {
	Out   io.Writer
	Color bool
	// Width is the terminal width, 0 if Out is not a terminal.
	Width int
}

// NewConsole describes stdout according to the colour setting.
func NewConsole(color string) *Console {
	c := &Console{Out: os.Stdout, Width: util.TerminalWidth(os.Stdout)}
	switch color {
	case "always":
		c.Color = true
	case "never":
		c.Color = false
	default:
		c.Color = util.ColorEnabled(os.Stdout)
	}
	return c
}
