package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"lightsout/lights"
	"lightsout/sound"
)

// Game adapts a lights.Session to ebiten
type Game struct {
	session  *lights.Session
	layout   Layout
	renderer *Renderer
	input    InputProvider
	sound    sound.Player
	log      *logrus.Entry
}

// NewGame creates a game drawing session with the geometry from config
func NewGame(config Config, session *lights.Session, input InputProvider, player sound.Player) *Game {
	rows, cols := session.Board().Dims()
	layout := NewLayout(config, rows, cols)

	if player == nil {
		player = sound.Nop{}
	}

	g := &Game{
		session:  session,
		layout:   layout,
		renderer: NewRenderer(layout),
		input:    input,
		sound:    player,
		log:      logrus.WithField("component", "game"),
	}
	session.OnChange(g.onChange)
	return g
}

// onChange plays feedback for applied transitions; drawing happens every
// frame so there is nothing to invalidate
func (g *Game) onChange(ev lights.Event) {
	switch ev.Kind {
	case lights.EventFlip:
		g.sound.Flip()
	case lights.EventWon:
		g.sound.Win()
	case lights.EventNewGame:
		g.sound.NewGame()
	}
}

// Update applies the input gathered this tick
func (g *Game) Update() error {
	g.input.Update()
	for _, a := range g.input.Actions() {
		g.handle(a)
	}
	return nil
}

func (g *Game) handle(a Action) {
	switch a.Kind {
	case ActionPress:
		g.press(a)
	case ActionNewGame:
		g.session.NewGame()
	case ActionToggleDebug:
		debugState := GetDebugState()
		debugState.ShowIDs = !debugState.ShowIDs
		g.log.WithField("show_ids", debugState.ShowIDs).Debug("Debug overlay toggled")
	case ActionToggleFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
}

func (g *Game) press(a Action) {
	if g.session.HasWon() {
		if hit(g.layout.ButtonRect(), a.Pos) {
			g.session.NewGame()
		}
		return
	}

	c, ok := g.layout.CellAt(a.Pos.X, a.Pos.Y)
	if !ok {
		return
	}
	g.session.Cells()[c.Row][c.Col].Activate()
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.session.Cells(), g.session.State(), g.session.Moves())
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}

// Close releases the audio device
func (g *Game) Close() {
	g.sound.Close()
}
