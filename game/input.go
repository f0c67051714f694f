package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionKind identifies a discrete request made by the player
type ActionKind int

const (
	// ActionPress is a click or tap at Pos
	ActionPress ActionKind = iota
	// ActionNewGame deals a new board
	ActionNewGame
	// ActionToggleDebug shows or hides cell ids
	ActionToggleDebug
	// ActionToggleFullscreen switches between window and fullscreen
	ActionToggleFullscreen
)

// Action is one request gathered during a tick
type Action struct {
	Kind ActionKind
	Pos  image.Point
}

// InputProvider defines the interface for player input
type InputProvider interface {
	// Update samples the devices once per tick
	Update()

	// Actions returns the requests gathered by the last Update
	Actions() []Action
}

// PlayerInput provides input from mouse, touch and keyboard
type PlayerInput struct {
	actions []Action

	// last known position of each active touch; released touches have no
	// position of their own
	touches map[ebiten.TouchID]image.Point
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{
		actions: make([]Action, 0, 4),
		touches: make(map[ebiten.TouchID]image.Point),
	}
}

// Update gathers this tick's presses
func (p *PlayerInput) Update() {
	p.actions = p.actions[:0]

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.actions = append(p.actions, Action{Kind: ActionPress, Pos: image.Pt(x, y)})
	}

	// Taps fire on release so a drag off the board can be abandoned
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.touches[id] = image.Pt(x, y)
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		if pos, ok := p.touches[id]; ok {
			p.actions = append(p.actions, Action{Kind: ActionPress, Pos: pos})
			delete(p.touches, id)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		p.actions = append(p.actions, Action{Kind: ActionNewGame})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		p.actions = append(p.actions, Action{Kind: ActionToggleDebug})
	}

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		p.actions = append(p.actions, Action{Kind: ActionToggleFullscreen})
	}
}

// Actions returns the requests gathered by the last Update
func (p *PlayerInput) Actions() []Action {
	return p.actions
}
