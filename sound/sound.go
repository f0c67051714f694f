// Package sound plays short synthesized cues for board events.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

// SampleRate is the rate all cues are synthesized and played at
const SampleRate = beep.SampleRate(44100)

// Player plays feedback for game events
type Player interface {
	Flip()
	Win()
	NewGame()
	Close()
}

// Note is a single sine tone
type Note struct {
	Freq     float64
	Duration time.Duration
}

var (
	flipCue    = []Note{{Freq: 880, Duration: 40 * time.Millisecond}}
	newGameCue = []Note{{Freq: 440, Duration: 60 * time.Millisecond}, {Freq: 660, Duration: 60 * time.Millisecond}}
	winCue     = []Note{
		{Freq: 523.25, Duration: 120 * time.Millisecond},
		{Freq: 659.25, Duration: 120 * time.Millisecond},
		{Freq: 783.99, Duration: 120 * time.Millisecond},
		{Freq: 1046.5, Duration: 240 * time.Millisecond},
	}
)

// Tone returns a sine tone of the given frequency that ends after d
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}

// Melody plays notes back to back
func Melody(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		s, err := Tone(sr, n.Freq, n.Duration)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return beep.Seq(parts...), nil
}

// Speaker plays cues through the system audio device
type Speaker struct {
	sr  beep.SampleRate
	log *logrus.Entry
}

// NewSpeaker initializes the audio device. Only one Speaker may exist per
// process.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Speaker{
		sr:  SampleRate,
		log: logrus.WithField("component", "sound"),
	}, nil
}

// Flip plays a short blip
func (s *Speaker) Flip() { s.play(flipCue) }

// Win plays a rising arpeggio
func (s *Speaker) Win() { s.play(winCue) }

// NewGame plays a two-note cue
func (s *Speaker) NewGame() { s.play(newGameCue) }

// Close stops playback and releases the device
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

func (s *Speaker) play(notes []Note) {
	m, err := Melody(s.sr, notes)
	if err != nil {
		s.log.WithError(err).Warn("Skipping cue")
		return
	}
	speaker.Play(m)
}

// Nop is a silent Player
type Nop struct{}

func (Nop) Flip()    {}
func (Nop) Win()     {}
func (Nop) NewGame() {}
func (Nop) Close()   {}

// Open returns a Speaker when enabled is true and the device can be opened,
// otherwise a silent player.
func Open(enabled bool) Player {
	if !enabled {
		return Nop{}
	}
	spk, err := NewSpeaker()
	if err != nil {
		logrus.WithError(err).Warn("Audio unavailable, continuing without sound")
		return Nop{}
	}
	return spk
}
