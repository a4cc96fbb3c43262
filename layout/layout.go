// Package layout reads and writes keyboard matrix description files.
//
// A layout file names the board, its dimensions and the key wired to every
// switch, in JSON, YAML or TOML:
//
//	name: macropad
//	rows: 2
//	cols: 3
//	keys:
//	  - [Escape, PhyA, PhyB]
//	  - [ControlLeft, Space, Enter]
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/keymatrix/keycode"
	"github.com/Alia5/keymatrix/matrix"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Supported file formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ErrFormat is returned for formats or file extensions other than json, yaml/yml and toml.
var ErrFormat = errors.New("unsupported layout format")

// File is the decoded form of a layout file. Keys holds key names as written.
type File struct {
	Name    string     `json:"name" yaml:"name" toml:"name"`
	Package string     `json:"package,omitempty" yaml:"package,omitempty" toml:"package,omitempty"`
	Rows    int        `json:"rows" yaml:"rows" toml:"rows"`
	Cols    int        `json:"cols" yaml:"cols" toml:"cols"`
	Keys    [][]string `json:"keys" yaml:"keys" toml:"keys"`
}

// NormalizeFormat maps a format name or alias to one of the Format constants, or "".
func NormalizeFormat(f string) string {
	switch strings.ToLower(strings.TrimPrefix(f, ".")) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "toml":
		return FormatTOML
	default:
		return ""
	}
}

// Load reads the layout file at path, picking the decoder from the file extension.
func Load(path string) (*File, error) {
	format := NormalizeFormat(filepath.Ext(path))
	if format == "" {
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format string) (*File, error) {
	var f File
	var err error
	switch NormalizeFormat(format) {
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s layout: %w", NormalizeFormat(format), err)
	}
	return &f, nil
}

// Encode serializes f in the given format.
func Encode(f *File, format string) ([]byte, error) {
	switch NormalizeFormat(format) {
	case FormatJSON:
		b, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(f)
	case FormatTOML:
		return toml.Marshal(*f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrFormat, format)
	}
}

// Grid validates f and resolves its key names.
func (f *File) Grid() (*matrix.Grid, error) {
	if f.Rows <= 0 || f.Cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", f.Rows, f.Cols)
	}
	if len(f.Keys) != f.Rows {
		return nil, fmt.Errorf("declared %d rows, found %d", f.Rows, len(f.Keys))
	}

	rows := make([][]keycode.Key, f.Rows)
	for r, names := range f.Keys {
		if len(names) != f.Cols {
			return nil, fmt.Errorf("row %d: declared %d columns, found %d", r, f.Cols, len(names))
		}
		rows[r] = make([]keycode.Key, f.Cols)
		for c, name := range names {
			k, err := keycode.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("row %d, col %d: %w", r, c, err)
			}
			rows[r][c] = k
		}
	}
	return matrix.NewGrid(rows)
}

// FromMatrix describes m as a layout file.
func FromMatrix(name string, m matrix.Matrix) *File {
	rows, cols := m.Dimensions()
	f := &File{Name: name, Rows: rows, Cols: cols, Keys: make([][]string, rows)}
	for r := range f.Keys {
		f.Keys[r] = make([]string, cols)
		for c := range f.Keys[r] {
			f.Keys[r][c] = m.Lookup(r, c).String()
		}
	}
	return f
}

// Template returns an unpopulated rows x cols layout for scaffolding a new board.
func Template(name string, rows, cols int) (*File, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	keys := make([][]keycode.Key, rows)
	for r := range keys {
		keys[r] = make([]keycode.Key, cols)
	}
	g, err := matrix.NewGrid(keys)
	if err != nil {
		return nil, err
	}
	return FromMatrix(name, g), nil
}

// PackageName returns the Go package name generated code for f should use.
// Letters outside a-z are dropped and a name that collides with a Go keyword gets a trailing underscore.
func (f *File) PackageName() string {
	src := f.Package
	if src == "" {
		src = f.Name
	}
	var b strings.Builder
	for _, r := range strings.ToLower(src) {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
		}
	}
	name := b.String()
	switch {
	case name == "":
		return "board"
	case token.IsKeyword(name):
		return name + "_"
	}
	return name
}
