package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadCoord is returned when a cell id is not of the form "row-col"
var ErrBadCoord = errors.New("board: malformed cell id")

// Coord addresses a single cell by row and column
type Coord struct {
	Row int
	Col int
}

// String formats the coordinate as the cell id used by renderers ("row-col")
func (c Coord) String() string {
	return strconv.Itoa(c.Row) + "-" + strconv.Itoa(c.Col)
}

// Neighborhood returns the positions a flip touches: the cell itself, then
// up, down, left and right. Positions may lie outside any particular board.
func (c Coord) Neighborhood() [5]Coord {
	return [5]Coord{
		c,
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
}

// ParseCoord parses a cell id produced by Coord.String
func ParseCoord(id string) (Coord, error) {
	rowPart, colPart, ok := strings.Cut(id, "-")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, id)
	}
	row, err := strconv.Atoi(rowPart)
	if err != nil || row < 0 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, id)
	}
	col, err := strconv.Atoi(colPart)
	if err != nil || col < 0 {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, id)
	}
	return Coord{Row: row, Col: col}, nil
}
