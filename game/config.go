package game

import "lightsout/lights"

// Config holds game configuration
type Config struct {
	lights.Config

	// CellSize is the side of each light in pixels
	CellSize int

	// CellGap is the space between neighbouring lights in pixels
	CellGap int

	// Padding is the margin around the board in pixels
	Padding int

	// HeaderHeight is the height of the status line above the board
	HeaderHeight int

	// MinWidth keeps the window wide enough for the win banner
	MinWidth int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Config:       lights.DefaultConfig(),
		CellSize:     72,
		CellGap:      6,
		Padding:      24,
		HeaderHeight: 28,
		MinWidth:     280,
	}
}

// WindowSize returns the logical screen size needed for the board
func (c Config) WindowSize() (int, int) {
	l := NewLayout(c, c.Rows, c.Cols)
	return l.Width, l.Height
}
