package game

import (
	"image"

	"lightsout/board"
)

const (
	buttonWidth  = 140
	buttonHeight = 36
)

// Layout maps board coordinates to screen rectangles and back
type Layout struct {
	Width, Height int

	origin   image.Point
	cellSize int
	gap      int
	rows     int
	cols     int
}

// NewLayout places a rows×cols board below the header, centred horizontally
func NewLayout(cfg Config, rows, cols int) Layout {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	gridW := span(cols, cfg.CellSize, cfg.CellGap)
	gridH := span(rows, cfg.CellSize, cfg.CellGap)

	width := gridW + 2*cfg.Padding
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	height := cfg.HeaderHeight + gridH + 2*cfg.Padding
	if floor := cfg.HeaderHeight + buttonHeight*4; height < floor {
		height = floor
	}

	return Layout{
		Width:    width,
		Height:   height,
		origin:   image.Pt((width-gridW)/2, cfg.HeaderHeight+cfg.Padding),
		cellSize: cfg.CellSize,
		gap:      cfg.CellGap,
		rows:     rows,
		cols:     cols,
	}
}

func span(n, size, gap int) int {
	if n <= 0 {
		return 0
	}
	return n*size + (n-1)*gap
}

// CellRect returns the screen rectangle of the light at c
func (l Layout) CellRect(c board.Coord) image.Rectangle {
	step := l.cellSize + l.gap
	topLeft := l.origin.Add(image.Pt(c.Col*step, c.Row*step))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(l.cellSize, l.cellSize))}
}

// CellAt returns the light under screen point (x, y). Gaps between lights
// and the area around the board are not hits.
func (l Layout) CellAt(x, y int) (board.Coord, bool) {
	step := l.cellSize + l.gap
	if step <= 0 {
		return board.Coord{}, false
	}
	dx, dy := x-l.origin.X, y-l.origin.Y
	if dx < 0 || dy < 0 {
		return board.Coord{}, false
	}
	c := board.Coord{Row: dy / step, Col: dx / step}
	if c.Row >= l.rows || c.Col >= l.cols {
		return board.Coord{}, false
	}
	if dx%step >= l.cellSize || dy%step >= l.cellSize {
		return board.Coord{}, false
	}
	return c, true
}

// ButtonRect returns the "Play again" control shown with the win banner
func (l Layout) ButtonRect() image.Rectangle {
	topLeft := image.Pt((l.Width-buttonWidth)/2, l.Height/2+buttonHeight/2)
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(buttonWidth, buttonHeight))}
}

// hit reports whether p lies inside rect
func hit(rect image.Rectangle, p image.Point) bool {
	return p.In(rect)
}
