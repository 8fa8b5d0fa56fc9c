package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// loadConfig loads the config file and applies command line overrides.
// Any failure is an init error.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, platform.NewInitError("configuration", err)
	}

	applyFlags(cmd.Flags(), &cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, platform.NewInitError("configuration", err)
	}
	return cfg, nil
}

// applyFlags overrides config values with flags set on the command line.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("assets") {
		cfg.Assets = flagAssets
	}
	if flags.Changed("font") {
		cfg.Font.Name = flagFont
	}
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger builds the process logger. With log.file set, output is
// appended to that file instead of stderr. The returned func closes it.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	out := os.Stderr
	cleanup := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, platform.NewInitError("log file", err)
		}
		out = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
	})

	level, err := cfg.LogLevel()
	if err != nil {
		cleanup()
		return nil, nil, platform.NewInitError("configuration", err)
	}
	logger.SetLevel(level)

	return logger, cleanup, nil
}
