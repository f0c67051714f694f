// Package tui plays Lights Out in a terminal through tcell.
package tui

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"lightsout/board"
	"lightsout/lights"
)

// Each light is drawn lightWidth×lightHeight character cells with a gap
// of one column and one row between lights.
const (
	lightWidth  = 4
	lightHeight = 2
	stepX       = lightWidth + 1
	stepY       = lightHeight + 1

	playAgainLabel = "[ Play again ]"
)

var (
	styleLit    = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	styleUnlit  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleSoft   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleButton = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack)
)

// View positions the board on the terminal and maps mouse positions back
// to lights
type View struct {
	Origin image.Point
}

// NewView places the board below a two-line header
func NewView() View {
	return View{Origin: image.Pt(2, 2)}
}

// CellRect returns the character cells covered by the light at c
func (v View) CellRect(c board.Coord) image.Rectangle {
	topLeft := v.Origin.Add(image.Pt(c.Col*stepX, c.Row*stepY))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(lightWidth, lightHeight))}
}

// CellAt returns the light under terminal position (x, y) on a rows×cols
// board
func (v View) CellAt(x, y, rows, cols int) (board.Coord, bool) {
	dx, dy := x-v.Origin.X, y-v.Origin.Y
	if dx < 0 || dy < 0 {
		return board.Coord{}, false
	}
	c := board.Coord{Row: dy / stepY, Col: dx / stepX}
	if c.Row >= rows || c.Col >= cols || dx%stepX >= lightWidth || dy%stepY >= lightHeight {
		return board.Coord{}, false
	}
	return c, true
}

// ButtonRect returns the "Play again" control of the win banner
func (v View) ButtonRect() image.Rectangle {
	topLeft := v.Origin.Add(image.Pt(0, 4))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(len(playAgainLabel), 1))}
}

// Draw renders the board, or only the win banner once the game is won
func (v View) Draw(s tcell.Screen, cells [][]lights.Cell, state lights.State, moves int, cursor board.Coord) {
	s.Clear()

	if state == lights.Won {
		v.drawWin(s, moves)
		s.Show()
		return
	}

	putString(s, 0, 0, fmt.Sprintf("Moves: %d", moves), styleSoft)
	putString(s, 0, 1, "click or space: flip  arrows/hjkl: move  n: new game  q: quit", styleSoft)

	for y, row := range cells {
		for x, cell := range row {
			at := board.Coord{Row: y, Col: x}
			v.drawCell(s, at, cell, at == cursor)
		}
	}
	s.Show()
}

func (v View) drawCell(s tcell.Screen, at board.Coord, cell lights.Cell, focused bool) {
	style := styleUnlit
	if cell.Lit {
		style = styleLit
	}

	r := v.CellRect(at)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
	if focused {
		s.SetContent(r.Min.X, r.Min.Y, '[', nil, style)
		s.SetContent(r.Max.X-1, r.Min.Y, ']', nil, style)
	}
}

func (v View) drawWin(s tcell.Screen, moves int) {
	putString(s, v.Origin.X, v.Origin.Y, "You win!", styleBanner)
	if moves > 0 {
		putString(s, v.Origin.X, v.Origin.Y+1, fmt.Sprintf("Cleared in %d moves", moves), styleSoft)
	}
	btn := v.ButtonRect()
	putString(s, btn.Min.X, btn.Min.Y, playAgainLabel, styleButton)
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
