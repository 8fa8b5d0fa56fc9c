package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default values, also written out in defaults/pong.yaml.
const (
	DefaultBackend  = "tui"
	DefaultAssets   = "assets"
	DefaultFont     = "gomono"
	DefaultFontSize = 16
	DefaultHold     = 150 * time.Millisecond
	DefaultLogLevel = "info"

	// DefaultRepeatDelay outlasts the usual 250-660ms terminal auto-repeat delay.
	DefaultRepeatDelay = 700 * time.Millisecond
)

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Backend: DefaultBackend,
		Assets:  DefaultAssets,
		Font: FontConfig{
			Name: DefaultFont,
			Size: DefaultFontSize,
		},
		Loop: LoopConfig{
			FPS: 0,
		},
		Input: InputConfig{
			Hold:        DefaultHold,
			RepeatDelay: DefaultRepeatDelay,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Source: "default",
	}
}
