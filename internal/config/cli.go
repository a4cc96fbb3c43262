// Package config declares the keymatrix command line.
package config

import "github.com/Alia5/keymatrix/internal/cmd"

// CLI is the root of the kong command tree.
type CLI struct {
	Config string `help:"Path to a config file (json, yaml or toml)" env:"KEYMATRIX_CONFIG" placeholder:"FILE"`

	cmd.Settings `embed:""`

	Keys   cmd.Keys          `cmd:"" help:"List the HID keyboard usage codes"`
	Lookup cmd.Lookup        `cmd:"" help:"Resolve key names to usage codes and back"`
	Layout cmd.LayoutCommand `cmd:"" help:"Create, validate and print layout files"`
	Gen    cmd.Gen           `cmd:"" help:"Generate the Go matrix table for a layout file"`
	Cfg    cmd.ConfigCommand `cmd:"" name:"config" help:"Manage the keymatrix config file"`
}
