package lights

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig is returned when a configuration value cannot be parsed
var ErrInvalidConfig = errors.New("lights: invalid configuration")

// Environment variables read by LoadConfig
const (
	EnvRows     = "LIGHTSOUT_ROWS"
	EnvCols     = "LIGHTSOUT_COLS"
	EnvChance   = "LIGHTSOUT_CHANCE"
	EnvSeed     = "LIGHTSOUT_SEED"
	EnvSound    = "LIGHTSOUT_SOUND"
	EnvLogLevel = "LIGHTSOUT_LOG_LEVEL"
	EnvLogFile  = "LIGHTSOUT_LOG_FILE"
)

// Config holds the parameters of a game
type Config struct {
	// Rows is the number of rows of the board
	Rows int

	// Cols is the number of columns of the board
	Cols int

	// ChanceLightStartsOn is the probability that any cell is lit at game start
	ChanceLightStartsOn float64

	// Seed seeds the random source; zero means seed from the clock
	Seed int64

	// Sound enables audible feedback
	Sound bool

	// LogLevel is a logrus level name ("debug", "info", ...)
	LogLevel string

	// LogFile receives log output when set; front-ends decide the default
	LogFile string
}

// DefaultConfig returns a 3x3 board with even odds for each light
func DefaultConfig() Config {
	return Config{
		Rows:                3,
		Cols:                3,
		ChanceLightStartsOn: 0.5,
		Sound:               true,
		LogLevel:            "info",
	}
}

// Level parses LogLevel, falling back to info when it is empty
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// LoadConfig starts from base and applies values from the given .env files
// and then from the process environment, which wins over the files.
// Missing files are skipped. With no files given, ".env" is tried.
func LoadConfig(base Config, envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	fileVals := make(map[string]string)
	for _, name := range envFiles {
		vals, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logrus.WithField("file", name).Debug("No env file, using environment variables directly")
				continue
			}
			return base, fmt.Errorf("read %s: %w", name, err)
		}
		for k, v := range vals {
			fileVals[k] = v
		}
	}

	return ApplyEnv(base, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// ApplyEnv overrides fields of cfg with values found through lookup
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	var err error
	if v, ok := lookup(EnvRows); ok {
		if cfg.Rows, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvRows, v)
		}
	}
	if v, ok := lookup(EnvCols); ok {
		if cfg.Cols, err = strconv.Atoi(v); err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvCols, v)
		}
	}
	if v, ok := lookup(EnvChance); ok {
		if cfg.ChanceLightStartsOn, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvChance, v)
		}
	}
	if v, ok := lookup(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
	}
	if v, ok := lookup(EnvSound); ok {
		if cfg.Sound, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSound, v)
		}
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
		if _, err := cfg.Level(); err != nil {
			return cfg, err
		}
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	return cfg, nil
}
