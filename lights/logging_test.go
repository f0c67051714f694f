package lights

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogrus(t *testing.T) {
	t.Helper()
	std := logrus.StandardLogger()
	out, lvl, formatter := std.Out, std.GetLevel(), std.Formatter
	t.Cleanup(func() {
		logrus.SetOutput(out)
		logrus.SetLevel(lvl)
		logrus.SetFormatter(formatter)
	})
}

func TestConfigureLoggingFallback(t *testing.T) {
	restoreLogrus(t)
	var buf bytes.Buffer

	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	closeLog, err := ConfigureLogging(cfg, &buf)
	require.NoError(t, err)
	defer closeLog()

	logrus.Info("hidden")
	logrus.WithField("component", "test").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=test")
}

func TestConfigureLoggingFile(t *testing.T) {
	restoreLogrus(t)
	path := filepath.Join(t.TempDir(), "lights.log")

	cfg := DefaultConfig()
	cfg.LogFile = path
	closeLog, err := ConfigureLogging(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	logrus.Info("to file")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestConfigureLoggingBadLevel(t *testing.T) {
	restoreLogrus(t)
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	_, err := ConfigureLogging(cfg, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
