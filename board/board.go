// Package board holds the Lights Out grid: an immutable rows×cols value of
// lit/unlit cells and the rules that produce new grids from old ones.
package board

import (
	"errors"
	"strings"
)

// ErrRaggedRows is returned by FromRows when rows differ in length
var ErrRaggedRows = errors.New("board: rows have different lengths")

// Rand is the source of randomness used to light cells at game start
type Rand interface {
	Float64() float64
}

// Board is a rows×cols grid of lights stored row-major.
// A Board is never modified after construction; every transition returns a
// new Board with its own storage.
type Board struct {
	rows  int
	cols  int
	cells []bool
}

// New creates a board where each cell is independently lit with probability
// chance. Negative dimensions are treated as zero.
func New(rows, cols int, chance float64, rnd Rand) Board {
	b := blank(rows, cols)
	for i := range b.cells {
		b.cells[i] = rnd.Float64() < chance
	}
	return b
}

// FromRows builds a board from literal rows, e.g. [][]bool{{false, true}}
func FromRows(rows [][]bool) (Board, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	b := blank(len(rows), cols)
	for y, row := range rows {
		if len(row) != cols {
			return Board{}, ErrRaggedRows
		}
		copy(b.cells[y*cols:(y+1)*cols], row)
	}
	return b, nil
}

func blank(rows, cols int) Board {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Board{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Dims returns the number of rows and columns
func (b Board) Dims() (rows, cols int) {
	return b.rows, b.cols
}

// InBounds reports whether c addresses a cell of this board
func (b Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// Lit reports whether the cell at c is on. Out-of-bounds cells are off.
func (b Board) Lit(c Coord) bool {
	if !b.InBounds(c) {
		return false
	}
	return b.cells[c.Row*b.cols+c.Col]
}

// LitCount returns the number of lit cells
func (b Board) LitCount() int {
	n := 0
	for _, on := range b.cells {
		if on {
			n++
		}
	}
	return n
}

// HasWon reports whether every light is off
func (b Board) HasWon() bool {
	for _, on := range b.cells {
		if on {
			return false
		}
	}
	return true
}

// FlipAround returns a copy of the board with the cell at c and its
// orthogonal neighbours toggled. Positions off the board are skipped.
func (b Board) FlipAround(c Coord) Board {
	next := b.clone()
	for _, n := range c.Neighborhood() {
		if next.InBounds(n) {
			i := n.Row*next.cols + n.Col
			next.cells[i] = !next.cells[i]
		}
	}
	return next
}

// Rows returns the grid as [y][x] slices that do not alias the board
func (b Board) Rows() [][]bool {
	out := make([][]bool, b.rows)
	for y := range out {
		out[y] = make([]bool, b.cols)
		copy(out[y], b.cells[y*b.cols:(y+1)*b.cols])
	}
	return out
}

// Equal reports whether both boards have the same dimensions and cells
func (b Board) Equal(other Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row, "O" for lit and "." for unlit
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.cols; x++ {
			if b.cells[y*b.cols+x] {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func (b Board) clone() Board {
	cells := make([]bool, len(b.cells))
	copy(cells, b.cells)
	return Board{rows: b.rows, cols: b.cols, cells: cells}
}
