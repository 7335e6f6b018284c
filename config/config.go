package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dimaq12/termsweeper/models"
)

const EnvPrefix = "MINESWEEPER"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Width   int
	Height  int
	Density float64
	// Mines, when positive, places exactly that many mines instead of
	// sampling by Density.
	Mines int
	// Level selects a preset size and density; 0 means use Width, Height
	// and Density as given.
	Level int
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64

	LogFile  string
	LogLevel logrus.Level
}

func defaults(v *viper.Viper) {
	v.SetDefault("width", 10)
	v.SetDefault("height", 10)
	v.SetDefault("density", 0.1)
	v.SetDefault("mines", 0)
	v.SetDefault("level", 0)
	v.SetDefault("seed", 0)
	v.SetDefault("log-file", "")
	v.SetDefault("log-level", "info")
}

// FlagSet declares the command line flags. Defaults live in viper so that
// unset flags do not shadow env or file values.
func FlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Int("width", 10, "board width in cells")
	fs.Int("height", 10, "board height in cells")
	fs.Float64("density", 0.1, "per-cell mine probability in [0, 1]")
	fs.Int("mines", 0, "exact number of mines (overrides density)")
	fs.Int("level", 0, "preset level (overrides width, height and density): "+levelUsage())
	fs.Int64("seed", 0, "random seed, 0 for time based")
	fs.String("config", "", "optional config file (yaml, toml or json)")
	fs.String("log-file", "", "write logs to this file, rotated")
	fs.String("log-level", "info", "log level")
	return fs
}

func levelUsage() string {
	presets := make([]string, 0, len(models.Levels()))
	for _, l := range models.Levels() {
		presets = append(presets, fmt.Sprintf("%d=%dx%d@%.2f", l.Number, l.Width, l.Height, l.Density))
	}
	return strings.Join(presets, ", ")
}

// Load resolves the configuration from defaults, an optional config file,
// MINESWEEPER_* environment variables and args, in increasing precedence.
func Load(args []string) (*Config, error) {
	fs := FlagSet("minesweeper")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Width:    v.GetInt("width"),
		Height:   v.GetInt("height"),
		Density:  v.GetFloat64("density"),
		Mines:    v.GetInt("mines"),
		Level:    v.GetInt("level"),
		Seed:     v.GetInt64("seed"),
		LogFile:  v.GetString("log-file"),
		LogLevel: level,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine would otherwise have to clamp.
func (c *Config) Validate() error {
	switch {
	case c.Level < 0 || c.Level > 5:
		return fmt.Errorf("%w: level %d not in 1-5", ErrInvalidConfig, c.Level)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case math.IsNaN(c.Density) || c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v not in [0, 1]", ErrInvalidConfig, c.Density)
	}

	width, height, _ := c.Board()
	if c.Mines < 0 || c.Mines > width*height {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d board", ErrInvalidConfig, c.Mines, width, height)
	}
	return nil
}

// Board returns the board size and density to play, with a level preset
// taking precedence over explicit values.
func (c *Config) Board() (width, height int, density float64) {
	if c.Level > 0 {
		l := models.LevelPreset(c.Level)
		return l.Width, l.Height, l.Density
	}
	return c.Width, c.Height, c.Density
}
