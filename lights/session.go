// Package lights holds the state of one Lights Out game: the current board,
// the configuration it was dealt from, and the Playing/Won state machine.
// Front-ends draw from a Session and feed user activations back into it.
package lights

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"lightsout/board"
)

// State is the phase of a game
type State int

const (
	// Playing means at least one light is on
	Playing State = iota
	// Won means every light is off; only NewGame leaves this state
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// EventKind identifies what changed in a session
type EventKind int

const (
	EventNewGame EventKind = iota
	EventFlip
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventNewGame:
		return "new-game"
	case EventFlip:
		return "flip"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event describes a transition that has just been applied
type Event struct {
	Kind  EventKind
	Coord board.Coord // target of the flip; zero for new games
	State State
	Moves int
}

// Option configures a Session
type Option func(*Session)

// WithRand replaces the random source used to deal boards
func WithRand(rnd board.Rand) Option {
	return func(s *Session) {
		s.rnd = rnd
	}
}

// WithLogger replaces the session's log entry
func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) {
		s.log = log
	}
}

// Session is the board state holder. It is owned by a single front-end and
// is not safe for concurrent use.
type Session struct {
	config   Config
	rnd      board.Rand
	log      *logrus.Entry
	board    board.Board
	state    State
	moves    int
	onChange func(Event)
}

// NewSession deals the first board from config
func NewSession(config Config, opts ...Option) *Session {
	s := &Session{
		config: config,
		log:    logrus.WithField("component", "session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.rnd = rand.New(rand.NewSource(seed))
	}

	s.deal()
	return s
}

// OnChange registers fn to be called after every applied transition.
// Registering again replaces the previous listener.
func (s *Session) OnChange(fn func(Event)) {
	s.onChange = fn
}

// Config returns the configuration boards are dealt from
func (s *Session) Config() Config {
	return s.config
}

// Board returns the current board
func (s *Session) Board() board.Board {
	return s.board
}

// State returns the current phase of the game
func (s *Session) State() State {
	return s.state
}

// HasWon reports whether every light is off
func (s *Session) HasWon() bool {
	return s.state == Won
}

// Moves returns the number of flips applied since the last new game
func (s *Session) Moves() int {
	return s.moves
}

// NewGame replaces the board with a freshly dealt one of the same size
func (s *Session) NewGame() {
	s.deal()
	s.emit(Event{Kind: EventNewGame, State: s.state})
}

// Flip toggles the light at c and its neighbours. Flips are ignored once
// the game is won. It reports whether the flip was applied.
func (s *Session) Flip(c board.Coord) bool {
	if s.state == Won {
		s.log.WithField("cell", c.String()).Debug("Ignoring flip on a won board")
		return false
	}

	s.board = s.board.FlipAround(c)
	s.moves++

	kind := EventFlip
	if s.board.HasWon() {
		s.state = Won
		kind = EventWon
		s.log.WithField("moves", s.moves).Info("Board cleared")
	} else {
		s.log.WithFields(logrus.Fields{
			"cell":  c.String(),
			"lit":   s.board.LitCount(),
			"moves": s.moves,
		}).Debug("Flipped")
	}

	s.emit(Event{Kind: kind, Coord: c, State: s.state})
	return true
}

// Activate flips the cell named by a renderer id ("row-col")
func (s *Session) Activate(id string) error {
	c, err := board.ParseCoord(id)
	if err != nil {
		s.log.WithError(err).Warn("Dropping activation")
		return err
	}
	s.Flip(c)
	return nil
}

func (s *Session) deal() {
	s.board = board.New(s.config.Rows, s.config.Cols, s.config.ChanceLightStartsOn, s.rnd)
	s.moves = 0
	s.state = Playing
	if s.board.HasWon() {
		s.state = Won
	}

	s.log.WithFields(logrus.Fields{
		"rows":  s.config.Rows,
		"cols":  s.config.Cols,
		"lit":   s.board.LitCount(),
		"state": s.state.String(),
	}).Info("New game")
}

func (s *Session) emit(ev Event) {
	ev.Moves = s.moves
	if s.onChange != nil {
		s.onChange(ev)
	}
}
