package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightsout/board"
)

func TestCellActivateCallsOnce(t *testing.T) {
	var got []string
	c := Cell{ID: "2-3", activate: func(id string) { got = append(got, id) }}

	c.Activate()
	assert.Equal(t, []string{"2-3"}, got)

	c.Activate()
	assert.Equal(t, []string{"2-3", "2-3"}, got)
}

func TestCellActivateWithoutCallback(t *testing.T) {
	assert.NotPanics(t, func() { Cell{ID: "0-0"}.Activate() })
}

func TestSessionCells(t *testing.T) {
	s := newTestSession(t, 2, 3, &scriptRand{vals: []float64{0.1, 0.9, 0.9, 0.9, 0.9, 0.1}})

	cells := s.Cells()
	require.Len(t, cells, 2)
	require.Len(t, cells[0], 3)

	assert.Equal(t, "0-0", cells[0][0].ID)
	assert.True(t, cells[0][0].Lit)
	assert.Equal(t, "1-2", cells[1][2].ID)
	assert.True(t, cells[1][2].Lit)
	assert.False(t, cells[0][1].Lit)
}

func TestSessionCellsActivateFlips(t *testing.T) {
	s := newTestSession(t, 2, 3, &scriptRand{vals: []float64{0.1, 0.9, 0.9, 0.9, 0.9, 0.1}})
	var events []Event
	s.OnChange(func(ev Event) { events = append(events, ev) })

	s.Cells()[0][1].Activate()

	assert.Equal(t, ".OO\n.OO", s.Board().String())
	require.Len(t, events, 1)
	assert.Equal(t, board.Coord{Row: 0, Col: 1}, events[0].Coord)
}
