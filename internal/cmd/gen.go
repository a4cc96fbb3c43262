package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/keymatrix/internal/codegen"
	"github.com/Alia5/keymatrix/layout"
)

// Gen turns a layout file into a Go package holding the compile-time matrix.
type Gen struct {
	File    string `arg:"" help:"Layout file (json, yaml or toml)" type:"existingfile"`
	Output  string `short:"o" help:"Write the generated source to this file instead of stdout" type:"path"`
	Package string `help:"Go package name (defaults to the layout's package or name)"`
	Force   bool   `help:"Overwrite if the output file already exists"`
}

func (c *Gen) Run(logger *slog.Logger, con *Console) error {
	f, err := layout.Load(c.File)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := codegen.Generate(logger, &buf, f, codegen.Options{Package: c.Package, Source: sourceRef(c.File, c.Output)}); err != nil {
		return err
	}

	if c.Output == "" {
		_, err := con.Out.Write(buf.Bytes())
		return err
	}
	if err := writeNew(c.Output, buf.Bytes(), c.Force); err != nil {
		return err
	}
	logger.Info("Matrix source generated", "layout", c.File, "output", c.Output)
	return nil
}

// sourceRef names the layout file for the generated header. The path is made
// relative to the output file's directory, or to the working directory when
// writing to stdout, so regenerating on another machine yields the same file.
func sourceRef(file, output string) string {
	base, err := os.Getwd()
	if output != "" {
		base, err = filepath.Abs(filepath.Dir(output))
	}
	if err != nil {
		return filepath.Base(file)
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return filepath.Base(file)
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return filepath.Base(file)
	}
	return filepath.ToSlash(rel)
}
