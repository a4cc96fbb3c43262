// Package matrix maps the switch positions of a keyboard matrix to keycodes.
//
// A matrix is addressed row-major: Lookup(row, col) with row in [0, rows)
// and col in [0, cols). Indexing outside the declared dimensions is a
// programming error and panics with a *RangeError.
package matrix

import (
	"errors"
	"fmt"
	"iter"

	"github.com/Alia5/keymatrix/keycode"
)

// Matrix is the read-only view a scanner uses to translate active positions into keys.
type Matrix interface {
	Lookup(row, col int) keycode.Key
	Dimensions() (rows, cols int)
}

// Position is a single switch intersection.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// RangeError is the panic value for a lookup outside the matrix.
type RangeError struct {
	Position
	Rows, Cols int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("matrix: position %s out of range for %dx%d matrix", e.Position, e.Rows, e.Cols)
}

// CheckBounds panics with a *RangeError unless row and col address a cell of a rows x cols matrix.
func CheckBounds(row, col, rows, cols int) {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(&RangeError{Position: Position{Row: row, Col: col}, Rows: rows, Cols: cols})
	}
}

// ErrUnpopulated means every cell of a matrix is None, so no switch ever produces a key.
var ErrUnpopulated = errors.New("matrix has no keys assigned")

// Size returns the number of addressable cells of m.
func Size(m Matrix) int {
	rows, cols := m.Dimensions()
	return rows * cols
}

// All iterates the cells of m in row-major order.
func All(m Matrix) iter.Seq2[Position, keycode.Key] {
	return func(yield func(Position, keycode.Key) bool) {
		rows, cols := m.Dimensions()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if !yield(Position{Row: r, Col: c}, m.Lookup(r, c)) {
					return
				}
			}
		}
	}
}

// Check returns ErrUnpopulated if m has no cell other than None.
// A matrix in that state is valid data but a hardware target shipping it registers no keys.
func Check(m Matrix) error {
	for _, k := range All(m) {
		if k != keycode.None {
			return nil
		}
	}
	return ErrUnpopulated
}

// Duplicates returns the keys wired to more than one position. None is ignored.
// Duplicates are not an error; some boards wire the same key twice on purpose.
func Duplicates(m Matrix) map[keycode.Key][]Position {
	seen := map[keycode.Key][]Position{}
	for p, k := range All(m) {
		if k == keycode.None {
			continue
		}
		seen[k] = append(seen[k], p)
	}
	for k, ps := range seen {
		if len(ps) < 2 {
			delete(seen, k)
		}
	}
	return seen
}
