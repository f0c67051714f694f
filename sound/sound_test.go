package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	tone, err := Tone(SampleRate, 880, 40*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, SampleRate.N(40*time.Millisecond), drain(tone))
}

func TestToneRejectsAliasing(t *testing.T) {
	_, err := Tone(SampleRate, float64(SampleRate), time.Millisecond)
	assert.Error(t, err)
}

func TestMelodyLength(t *testing.T) {
	want := 0
	for _, n := range winCue {
		want += SampleRate.N(n.Duration)
	}

	m, err := Melody(SampleRate, winCue)
	require.NoError(t, err)
	assert.Equal(t, want, drain(m))
}

func TestMelodyStaysInRange(t *testing.T) {
	m, err := Melody(SampleRate, newGameCue)
	require.NoError(t, err)

	buf := make([][2]float64, 1024)
	n, _ := m.Stream(buf)
	for _, frame := range buf[:n] {
		assert.LessOrEqual(t, frame[0], 1.0)
		assert.GreaterOrEqual(t, frame[0], -1.0)
	}
}

func TestOpenDisabled(t *testing.T) {
	p := Open(false)
	assert.IsType(t, Nop{}, p)
	assert.NotPanics(t, func() {
		p.Flip()
		p.Win()
		p.NewGame()
		p.Close()
	})
}
