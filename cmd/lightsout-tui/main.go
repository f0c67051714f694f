package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"lightsout/lights"
	"lightsout/sound"
	"lightsout/tui"
)

func main() {
	// Sound is opt-in in the terminal
	config := lights.DefaultConfig()
	config.Sound = false

	config, err := lights.LoadConfig(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	flag.IntVar(&config.Rows, "rows", config.Rows, "number of rows")
	flag.IntVar(&config.Cols, "cols", config.Cols, "number of columns")
	flag.Float64Var(&config.ChanceLightStartsOn, "chance", config.ChanceLightStartsOn, "chance each light starts on")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "random seed (0 seeds from the clock)")
	flag.BoolVar(&config.Sound, "sound", config.Sound, "play sound cues")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	flag.StringVar(&config.LogFile, "log-file", config.LogFile, "write logs to this file (discarded otherwise)")
	flag.Parse()

	// Logs on stderr would tear through the screen
	closeLog, err := lights.ConfigureLogging(config, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(1)
	}

	err = run(config)
	if err != nil {
		logrus.WithError(err).Error("Terminal session failed")
		fmt.Fprintln(os.Stderr, err)
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(config lights.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	player := sound.Open(config.Sound)
	defer player.Close()

	session := lights.NewSession(config)
	logrus.WithFields(logrus.Fields{
		"rows": config.Rows,
		"cols": config.Cols,
	}).Info("Starting terminal game")

	return tui.NewApp(screen, session, player).Run()
}
