package game

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"lightsout/board"
)

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestLayoutRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg, 4, 5)

	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			c := board.Coord{Row: row, Col: col}
			p := center(l.CellRect(c))
			got, ok := l.CellAt(p.X, p.Y)
			assert.True(t, ok, c.String())
			assert.Equal(t, c, got)
		}
	}
}

func TestLayoutCellEdges(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg, 3, 3)
	r := l.CellRect(board.Coord{Row: 1, Col: 1})

	got, ok := l.CellAt(r.Min.X, r.Min.Y)
	assert.True(t, ok)
	assert.Equal(t, board.Coord{Row: 1, Col: 1}, got)

	got, ok = l.CellAt(r.Max.X-1, r.Max.Y-1)
	assert.True(t, ok)
	assert.Equal(t, board.Coord{Row: 1, Col: 1}, got)
}

func TestLayoutMisses(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg, 3, 3)
	first := l.CellRect(board.Coord{})
	last := l.CellRect(board.Coord{Row: 2, Col: 2})

	tests := []struct {
		name string
		p    image.Point
	}{
		{"Above board", image.Pt(first.Min.X+5, first.Min.Y-1)},
		{"Left of board", image.Pt(first.Min.X-1, first.Min.Y+5)},
		{"Gap between columns", image.Pt(first.Max.X+1, first.Min.Y+5)},
		{"Gap between rows", image.Pt(first.Min.X+5, first.Max.Y+1)},
		{"Past last column", image.Pt(last.Max.X+cfg.CellGap+5, last.Min.Y+5)},
		{"Below last row", image.Pt(last.Min.X+5, last.Max.Y+cfg.CellGap+5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := l.CellAt(tt.p.X, tt.p.Y)
			assert.False(t, ok)
		})
	}
}

func TestLayoutFitsBoard(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg, 6, 8)
	bounds := image.Rect(0, 0, l.Width, l.Height)

	assert.True(t, l.CellRect(board.Coord{}).In(bounds))
	assert.True(t, l.CellRect(board.Coord{Row: 5, Col: 7}).In(bounds))
	assert.True(t, l.ButtonRect().In(bounds))
}

func TestLayoutMinimumSize(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLayout(cfg, 1, 1)
	assert.Equal(t, cfg.MinWidth, l.Width)
	assert.True(t, l.ButtonRect().In(image.Rect(0, 0, l.Width, l.Height)))

	empty := NewLayout(cfg, 0, -3)
	_, ok := empty.CellAt(l.Width/2, l.Height/2)
	assert.False(t, ok)
}

func TestWindowSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 7
	w, h := cfg.WindowSize()

	want := NewLayout(cfg, 5, 7)
	assert.Equal(t, want.Width, w)
	assert.Equal(t, want.Height, h)
}
