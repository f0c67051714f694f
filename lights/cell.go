package lights

import "lightsout/board"

// Cell is what a renderer needs to draw one light and route its activation
type Cell struct {
	ID  string
	Lit bool

	activate func(id string)
}

// Activate reports a user activation of this cell to its session.
// Each call triggers exactly one callback with the cell's id.
func (c Cell) Activate() {
	if c.activate != nil {
		c.activate(c.ID)
	}
}

// Cells returns the renderable cells of the current board, row-major
func (s *Session) Cells() [][]Cell {
	rows, cols := s.board.Dims()
	activate := func(id string) {
		_ = s.Activate(id)
	}

	out := make([][]Cell, rows)
	for y := range out {
		out[y] = make([]Cell, cols)
		for x := range out[y] {
			c := board.Coord{Row: y, Col: x}
			out[y][x] = Cell{
				ID:       c.String(),
				Lit:      s.board.Lit(c),
				activate: activate,
			}
		}
	}
	return out
}
