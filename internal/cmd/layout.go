package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/Alia5/keymatrix/internal/configpaths"
	"github.com/Alia5/keymatrix/keycode"
	"github.com/Alia5/keymatrix/layout"
	"github.com/Alia5/keymatrix/matrix"
)

// LayoutCommand groups layout file subcommands.
type LayoutCommand struct {
	Init  LayoutInit  `cmd:"" help:"Scaffold an empty layout file"`
	Check LayoutCheck `cmd:"" help:"Validate a layout file"`
	Show  LayoutShow  `cmd:"" help:"Print the key grid of a layout file"`
}

// LayoutInit writes an all-None layout for a new board.
type LayoutInit struct {
	Name   string `help:"Board name" default:"board"`
	Rows   int    `help:"Number of matrix rows" default:"3"`
	Cols   int    `help:"Number of matrix columns" default:"5"`
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml"`
	Output string `help:"Destination file path (defaults to <name>.<format> in the current directory)" type:"path"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

func (c *LayoutInit) Run(logger *slog.Logger) error {
	f, err := layout.Template(c.Name, c.Rows, c.Cols)
	if err != nil {
		return err
	}
	data, err := layout.Encode(f, c.Format)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = f.PackageName() + "." + configpaths.Ext(c.Format)
	}
	if err := writeNew(dest, data, c.Force); err != nil {
		return err
	}
	logger.Info("Layout template written", "file", dest, "rows", c.Rows, "cols", c.Cols)
	return nil
}

// LayoutCheck validates a layout file.
type LayoutCheck struct {
	File   string `arg:"" help:"Layout file (json, yaml or toml)" type:"existingfile"`
	Strict bool   `help:"Treat keys wired to more than one switch as errors"`
}

func (c *LayoutCheck) Run(logger *slog.Logger, con *Console) error {
	f, err := layout.Load(c.File)
	if err != nil {
		return err
	}
	g, err := f.Grid()
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	if err := matrix.Check(g); err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	dups := matrix.Duplicates(g)
	keys := make([]keycode.Key, 0, len(dups))
	for k := range dups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		logger.Warn("Key wired to more than one switch", "key", k, "positions", dups[k])
	}
	if c.Strict && len(dups) > 0 {
		return fmt.Errorf("%s: %d keys wired to more than one switch", c.File, len(dups))
	}

	assigned := 0
	for _, k := range matrix.All(g) {
		if k != keycode.None {
			assigned++
		}
	}
	rows, cols := g.Dimensions()
	fmt.Fprintf(con.Out, "%s: ok (%dx%d, %d of %d switches assigned)\n", c.File, rows, cols, assigned, matrix.Size(g))
	return nil
}

// LayoutShow renders a layout file.
type LayoutShow struct {
	File string `arg:"" help:"Layout file (json, yaml or toml)" type:"existingfile"`
	List bool   `help:"Print one switch per line instead of a grid"`
}

const (
	ansiDim   = "\x1b[2m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

func (c *LayoutShow) Run(logger *slog.Logger, con *Console) error {
	f, err := layout.Load(c.File)
	if err != nil {
		return err
	}
	g, err := f.Grid()
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	width := 0
	for _, k := range matrix.All(g) {
		width = max(width, len(k.String()))
	}
	_, cols := g.Dimensions()
	gridWidth := cols*(width+3) + 1

	if c.List || con.Width == 0 || gridWidth > con.Width {
		logger.Debug("Rendering layout as list", "gridWidth", gridWidth, "terminalWidth", con.Width)
		for p, k := range matrix.All(g) {
			fmt.Fprintf(con.Out, "%d\t%d\t%s\t0x%02x\n", p.Row, p.Col, k, k.Code())
		}
		return nil
	}

	border := "+" + strings.Repeat(strings.Repeat("-", width+2)+"+", cols)
	fmt.Fprintln(con.Out, border)
	for _, row := range g.Rows() {
		var b strings.Builder
		b.WriteString("|")
		for _, k := range row {
			name := k.String()
			pad := strings.Repeat(" ", width-len(name))
			switch {
			case con.Color && k == keycode.None:
				name = ansiDim + name + ansiReset
			case con.Color && k.IsModifier():
				name = ansiBold + name + ansiReset
			}
			b.WriteString(" " + name + pad + " |")
		}
		fmt.Fprintln(con.Out, b.String())
		fmt.Fprintln(con.Out, border)
	}
	return nil
}

func writeNew(dest string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}
