package lights

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging points the standard logrus logger at cfg.LogFile, or at
// fallback when no file is configured, and applies cfg's level. The returned
// function closes the log file, if one was opened.
func ConfigureLogging(cfg Config, fallback io.Writer) (func(), error) {
	lvl, err := cfg.Level()
	if err != nil {
		return func() {}, err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile == "" {
		logrus.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return func() {}, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
