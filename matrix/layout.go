package matrix

import "github.com/Alia5/keymatrix/keycode"

// Dimensions of the board this module ships for.
const (
	Rows = 3
	Cols = 5
)

// Layout is the compile-time switch table of the shipped board, indexed [row][col].
type Layout [Rows][Cols]keycode.Key

// Not wired up yet: every switch reports None until a real board replaces this table.
var shipped = Layout{}

// Default returns a copy of the shipped layout.
func Default() Layout {
	return shipped
}

// Lookup returns the key wired to (row, col).
func (l Layout) Lookup(row, col int) keycode.Key {
	CheckBounds(row, col, Rows, Cols)
	return l[row][col]
}

// Dimensions returns (Rows, Cols).
func (l Layout) Dimensions() (rows, cols int) {
	return Rows, Cols
}
