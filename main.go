package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"lightsout/game"
	"lightsout/lights"
	"lightsout/sound"
)

func main() {
	config := game.DefaultConfig()

	// Environment (and .env) first, flags override it
	base, err := lights.LoadConfig(config.Config)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	config.Config = base

	flag.IntVar(&config.Rows, "rows", config.Rows, "number of rows")
	flag.IntVar(&config.Cols, "cols", config.Cols, "number of columns")
	flag.Float64Var(&config.ChanceLightStartsOn, "chance", config.ChanceLightStartsOn, "chance each light starts on")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "random seed (0 seeds from the clock)")
	flag.BoolVar(&config.Sound, "sound", config.Sound, "play sound cues")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	flag.StringVar(&config.LogFile, "log-file", config.LogFile, "write logs to this file instead of stderr")
	flag.Parse()

	closeLog, err := lights.ConfigureLogging(config.Config, os.Stderr)
	if err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	err = run(config)
	if err != nil {
		logrus.WithError(err).Error("Game loop stopped")
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(config game.Config) error {
	session := lights.NewSession(config.Config)
	g := game.NewGame(config, session, game.NewPlayerInput(), sound.Open(config.Sound))
	defer g.Close()

	width, height := config.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Lights Out")
	ebiten.SetWindowResizable(true)

	return ebiten.RunGame(g)
}
