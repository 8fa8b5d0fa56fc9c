// Package config provides YAML-based configuration loading for the game
// and its front ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the effective configuration of a run.
type Config struct {
	Backend string      `yaml:"backend"` // Front end name, see registry.List
	Assets  string      `yaml:"assets"`  // Directory holding fonts/
	Font    FontConfig  `yaml:"font"`
	Loop    LoopConfig  `yaml:"loop"`
	Input   InputConfig `yaml:"input"`
	Log     LogConfig   `yaml:"log"`

	// Source records where the configuration was read from.
	Source string `yaml:"-"`
}

// FontConfig selects the score font.
type FontConfig struct {
	Name string  `yaml:"name"` // "gomono" or a file under <assets>/fonts
	Size float64 `yaml:"size"`
}

// LoopConfig tunes the frame loop.
type LoopConfig struct {
	FPS int `yaml:"fps"` // 0 = uncapped
}

// InputConfig tunes keyboard emulation in the terminal front end.
type InputConfig struct {
	Hold        time.Duration `yaml:"hold"`
	RepeatDelay time.Duration `yaml:"repeat_delay"` // Down time of a first press, covers the terminal's auto-repeat delay
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validation errors.
var (
	ErrFontSize  = errors.New("config: font size must be positive")
	ErrFPS       = errors.New("config: fps must not be negative")
	ErrHold      = errors.New("config: input hold must not be negative")
	ErrRepeat    = errors.New("config: input repeat delay must not be negative")
	ErrLogLevel  = errors.New("config: unknown log level")
	ErrNoBackend = errors.New("config: backend must be set")
)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrNoBackend
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("%w: %v", ErrFontSize, c.Font.Size)
	}
	if c.Loop.FPS < 0 {
		return fmt.Errorf("%w: %d", ErrFPS, c.Loop.FPS)
	}
	if c.Input.Hold < 0 {
		return fmt.Errorf("%w: %s", ErrHold, c.Input.Hold)
	}
	if c.Input.RepeatDelay < 0 {
		return fmt.Errorf("%w: %s", ErrRepeat, c.Input.RepeatDelay)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrLogLevel, c.Log.Level)
	}
	return lvl, nil
}
