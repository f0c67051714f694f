package tui

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"lightsout/board"
	"lightsout/lights"
	"lightsout/sound"
)

// App runs a session on a tcell screen. All state is touched from the
// goroutine calling Run or HandleEvent.
type App struct {
	screen  tcell.Screen
	session *lights.Session
	view    View
	sound   sound.Player
	log     *logrus.Entry

	cursor  board.Coord
	buttons tcell.ButtonMask
}

// NewApp binds session to an initialized screen
func NewApp(screen tcell.Screen, session *lights.Session, player sound.Player) *App {
	if player == nil {
		player = sound.Nop{}
	}
	a := &App{
		screen:  screen,
		session: session,
		view:    NewView(),
		sound:   player,
		log:     logrus.WithField("component", "tui"),
	}
	session.OnChange(a.onChange)
	return a
}

// Run draws the board and processes events until the player quits or the
// screen is finalized
func (a *App) Run() error {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
	}
}

// Cursor returns the keyboard focus
func (a *App) Cursor() board.Coord {
	return a.cursor
}

// HandleEvent applies a single terminal event. It returns false when the
// player asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		a.activateCursor()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'n':
			a.session.NewGame()
		case ' ':
			a.activateCursor()
		case 'k':
			a.moveCursor(-1, 0)
		case 'j':
			a.moveCursor(1, 0)
		case 'h':
			a.moveCursor(0, -1)
		case 'l':
			a.moveCursor(0, 1)
		}
	}
	return true
}

// handleMouse acts on the press edge of the primary button only
func (a *App) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
	a.buttons = ev.Buttons()
	if !pressed {
		return
	}

	x, y := ev.Position()
	if a.session.HasWon() {
		if image.Pt(x, y).In(a.view.ButtonRect()) {
			a.session.NewGame()
		}
		return
	}

	rows, cols := a.session.Board().Dims()
	c, ok := a.view.CellAt(x, y, rows, cols)
	if !ok {
		return
	}
	a.cursor = c
	a.session.Cells()[c.Row][c.Col].Activate()
}

func (a *App) activateCursor() {
	if a.session.HasWon() {
		a.session.NewGame()
		return
	}
	if !a.session.Board().InBounds(a.cursor) {
		return
	}
	a.session.Cells()[a.cursor.Row][a.cursor.Col].Activate()
}

func (a *App) moveCursor(dRow, dCol int) {
	next := board.Coord{Row: a.cursor.Row + dRow, Col: a.cursor.Col + dCol}
	if !a.session.Board().InBounds(next) {
		return
	}
	a.cursor = next
	a.draw()
}

func (a *App) onChange(ev lights.Event) {
	switch ev.Kind {
	case lights.EventFlip:
		a.sound.Flip()
	case lights.EventWon:
		a.sound.Win()
	case lights.EventNewGame:
		a.sound.NewGame()
	}
	a.log.WithFields(logrus.Fields{
		"event": ev.Kind.String(),
		"state": ev.State.String(),
		"moves": ev.Moves,
	}).Debug("Redrawing")
	a.draw()
}

func (a *App) draw() {
	a.view.Draw(a.screen, a.session.Cells(), a.session.State(), a.session.Moves(), a.cursor)
}
