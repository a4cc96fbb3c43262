package matrix

import (
	"errors"
	"fmt"

	"github.com/Alia5/keymatrix/keycode"
)

// Grid is a matrix whose dimensions are only known at run time, e.g. one read from a layout file.
// It cannot be changed after NewGrid returns.
type Grid struct {
	rows, cols int
	cells      []keycode.Key
}

// NewGrid copies rows into a Grid. Every row must have the same, non-zero length.
func NewGrid(rows [][]keycode.Key) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("grid needs at least one row")
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("grid needs at least one column")
	}

	g := &Grid{
		rows:  len(rows),
		cols:  cols,
		cells: make([]keycode.Key, 0, len(rows)*cols),
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", r, len(row), cols)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// FromMatrix copies any Matrix into a Grid.
func FromMatrix(m Matrix) *Grid {
	rows, cols := m.Dimensions()
	g := &Grid{rows: rows, cols: cols, cells: make([]keycode.Key, 0, rows*cols)}
	for _, k := range All(m) {
		g.cells = append(g.cells, k)
	}
	return g
}

// Lookup returns the key wired to (row, col).
func (g *Grid) Lookup(row, col int) keycode.Key {
	CheckBounds(row, col, g.rows, g.cols)
	return g.cells[row*g.cols+col]
}

// Dimensions returns the grid's row and column count.
func (g *Grid) Dimensions() (rows, cols int) {
	return g.rows, g.cols
}

// Rows returns a copy of the grid as nested slices.
func (g *Grid) Rows() [][]keycode.Key {
	out := make([][]keycode.Key, g.rows)
	for r := range out {
		out[r] = append([]keycode.Key(nil), g.cells[r*g.cols:(r+1)*g.cols]...)
	}
	return out
}
