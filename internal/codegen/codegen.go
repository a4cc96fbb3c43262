// Package codegen emits Go source declaring a board's key matrix as a compile-time table.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"log/slog"
	"strings"
	"text/template"
	"unicode"

	"github.com/Alia5/keymatrix/keycode"
	"github.com/Alia5/keymatrix/layout"
	"github.com/Alia5/keymatrix/matrix"
)

const modulePath = "github.com/Alia5/keymatrix"

const matrixTemplate = `// Code generated by keymatrix; DO NOT EDIT.
{{if .Source}}// Source: {{.Source}}
{{end}}
// Package {{.Package}} holds the switch matrix of the {{.Board}} board.
package {{.Package}}

import (
	"{{.Module}}/keycode"
	"{{.Module}}/matrix"
)

const (
	Rows = {{.Rows}}
	Cols = {{.Cols}}
)

// Layout is the switch table of the {{.Board}} board, indexed [row][col].
type Layout [Rows][Cols]keycode.Key

var layout = Layout{
{{- range .Cells}}
	{ {{- join .}} },
{{- end}}
}

// Matrix returns a copy of the board's layout.
func Matrix() Layout {
	return layout
}

// Lookup returns the key wired to (row, col).
func (l Layout) Lookup(row, col int) keycode.Key {
	matrix.CheckBounds(row, col, Rows, Cols)
	return l[row][col]
}

// Dimensions returns (Rows, Cols).
func (l Layout) Dimensions() (rows, cols int) {
	return Rows, Cols
}
`

var tmpl = template.Must(template.New("matrix").Funcs(template.FuncMap{
	"join": func(cells []string) string {
		var b bytes.Buffer
		for i, c := range cells {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c)
		}
		return b.String()
	},
}).Parse(matrixTemplate))

type templateData struct {
	Module  string
	Package string
	Board   string
	Source  string
	Rows    int
	Cols    int
	Cells   [][]string
}

// ErrPackageName is returned when the requested package name is not a valid Go identifier.
var ErrPackageName = errors.New("invalid Go package name")

// Options tweak the generated file.
type Options struct {
	// Package overrides the package name derived from the layout file.
	Package string
	// Source is recorded in the header, usually the layout file path.
	Source string
}

// Generate writes the Go source for f to w.
func Generate(logger *slog.Logger, w io.Writer, f *layout.File, opts Options) error {
	g, err := f.Grid()
	if err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}
	if err := matrix.Check(g); err != nil {
		logger.Warn("Generating matrix without any keys", "board", f.Name, "error", err)
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = f.PackageName()
	}
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return fmt.Errorf("%w: %q", ErrPackageName, pkg)
	}
	board := commentText(f.Name)
	if board == "" {
		board = pkg
	}

	data := templateData{
		Module:  modulePath,
		Package: pkg,
		Board:   board,
		Source:  commentText(opts.Source),
	}
	data.Rows, data.Cols = g.Dimensions()
	for _, row := range g.Rows() {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = goExpr(k)
		}
		data.Cells = append(data.Cells, cells)
	}

	logger.Debug("Rendering matrix source", "package", pkg, "rows", data.Rows, "cols", data.Cols)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render matrix template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// commentText folds s onto a single line so it can sit inside a // comment.
func commentText(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsControl(r) || unicode.IsSpace(r)
	}), " ")
}

func goExpr(k keycode.Key) string {
	if k.Known() {
		return "keycode." + k.String()
	}
	return fmt.Sprintf("keycode.Key(0x%02x)", k.Code())
}
