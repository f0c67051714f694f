package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"lightsout/board"
	"lightsout/lights"
)

// Palette
var (
	colorBackground = color.RGBA{20, 20, 40, 255}
	colorLit        = color.RGBA{255, 214, 64, 255}
	colorLitEdge    = color.RGBA{255, 245, 190, 255}
	colorUnlit      = color.RGBA{44, 48, 78, 255}
	colorUnlitEdge  = color.RGBA{70, 76, 120, 255}
	colorText       = color.RGBA{220, 224, 240, 255}
	colorTextSoft   = color.RGBA{140, 146, 180, 255}
	colorBanner     = color.RGBA{255, 214, 64, 255}
	colorButton     = color.RGBA{60, 140, 90, 255}
	colorButtonEdge = color.RGBA{140, 220, 160, 255}
)

// Renderer draws the board, the header and the win banner
type Renderer struct {
	layout Layout
	face   font.Face
}

// NewRenderer creates a new renderer
func NewRenderer(layout Layout) *Renderer {
	return &Renderer{
		layout: layout,
		face:   basicfont.Face7x13,
	}
}

// Render draws one frame. When the game is won only the banner is drawn.
func (r *Renderer) Render(screen *ebiten.Image, cells [][]lights.Cell, state lights.State, moves int) {
	screen.Fill(colorBackground)

	if state == lights.Won {
		r.RenderWin(screen, moves)
		return
	}

	r.drawText(screen, fmt.Sprintf("Moves: %d", moves), 12, 20, colorTextSoft)
	r.drawText(screen, "N: new game", r.layout.Width-12-11*7, 20, colorTextSoft)

	showIDs := GetDebugState().ShowIDs
	for y, row := range cells {
		for x, cell := range row {
			r.RenderCell(screen, board.Coord{Row: y, Col: x}, cell, showIDs)
		}
	}
}

// RenderCell draws a single light
func (r *Renderer) RenderCell(screen *ebiten.Image, at board.Coord, cell lights.Cell, showID bool) {
	rect := r.layout.CellRect(at)
	fill, edge := colorUnlit, colorUnlitEdge
	if cell.Lit {
		fill, edge = colorLit, colorLitEdge
	}

	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, edge, true)

	if showID {
		ebitenutil.DebugPrintAt(screen, cell.ID, rect.Min.X+4, rect.Min.Y+2)
	}
}

// RenderWin draws the win message and the "Play again" button
func (r *Renderer) RenderWin(screen *ebiten.Image, moves int) {
	mid := r.layout.Height / 2
	r.drawCentered(screen, "You win!", mid-buttonHeight, colorBanner)
	if moves > 0 {
		r.drawCentered(screen, fmt.Sprintf("Cleared in %d moves", moves), mid-buttonHeight+20, colorTextSoft)
	}

	btn := r.layout.ButtonRect()
	x, y := float32(btn.Min.X), float32(btn.Min.Y)
	w, h := float32(btn.Dx()), float32(btn.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, colorButton, true)
	vector.StrokeRect(screen, x, y, w, h, 2, colorButtonEdge, true)
	r.drawCentered(screen, "Play again", btn.Min.Y+btn.Dy()/2+4, colorText)
}

func (r *Renderer) drawCentered(screen *ebiten.Image, s string, baseline int, clr color.Color) {
	bounds := font.MeasureString(r.face, s)
	x := (r.layout.Width - bounds.Round()) / 2
	r.drawText(screen, s, x, baseline, clr)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, baseline int, clr color.Color) {
	text.Draw(screen, s, r.face, x, baseline, clr)
}
