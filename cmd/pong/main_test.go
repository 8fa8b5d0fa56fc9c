package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// execute runs the root command with fresh flags.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringVar(&flagBackend, "backend", "", "")
	fs.StringVar(&flagFont, "font", "", "")
	fs.IntVar(&flagFPS, "fps", 0, "")
	fs.StringVar(&flagLogLevel, "log-level", "", "")
	if err := fs.Parse([]string{"--backend", "sdl", "--fps", "30"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	applyFlags(fs, &cfg)

	if cfg.Backend != "sdl" {
		t.Errorf("Backend = %q, expected sdl", cfg.Backend)
	}
	if cfg.Loop.FPS != 30 {
		t.Errorf("Loop.FPS = %d, expected 30", cfg.Loop.FPS)
	}
	if cfg.Font.Name != config.DefaultFont {
		t.Errorf("Font.Name = %q, unset flag should keep %q", cfg.Font.Name, config.DefaultFont)
	}
	if cfg.Log.Level != config.DefaultLogLevel {
		t.Errorf("Log.Level = %q, unset flag should keep %q", cfg.Log.Level, config.DefaultLogLevel)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "debug"
	cfg.Log.File = filepath.Join(t.TempDir(), "pong.log")

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, expected debug", logger.GetLevel())
	}
	logger.Debug("hello from the test")
	closeLog()

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from the test") {
		t.Errorf("log file = %q, expected the message", data)
	}
}

func TestNewLoggerBadFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "missing", "dir", "pong.log")

	_, _, err := newLogger(cfg)
	var initErr *platform.InitError
	if !errors.As(err, &initErr) || initErr.Stage != "log file" {
		t.Errorf("newLogger() error = %v, expected log file InitError", err)
	}
}

func TestBackendsCommand(t *testing.T) {
	out, err := execute(t, "backends")
	if err != nil {
		t.Fatalf("backends error = %v", err)
	}
	if !strings.Contains(out, "tui") {
		t.Errorf("backends output missing tui:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--fps", "30", "--font", "LiberationMono-Regular")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	for _, want := range []string{"# source: embedded", "fps: 30", "name: LiberationMono-Regular"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidConfigIsInitError(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))

	var initErr *platform.InitError
	if !errors.As(err, &initErr) || initErr.Stage != "configuration" {
		t.Errorf("error = %v, expected configuration InitError", err)
	}
}

func TestInvalidFlagIsInitError(t *testing.T) {
	_, err := execute(t, "config", "--fps", "-5")

	if !errors.Is(err, config.ErrFPS) {
		t.Errorf("error = %v, expected ErrFPS", err)
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := execute(t, "--backend", "vulkan")

	if !errors.Is(err, platform.ErrUnknownBackend) {
		t.Fatalf("error = %v, expected ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), "tui") {
		t.Errorf("error %q should list available front ends", err)
	}
}

func TestMissingFontFailsStartup(t *testing.T) {
	_, err := execute(t, "--assets", t.TempDir(), "--font", "LiberationMono-Regular")

	var initErr *platform.InitError
	if !errors.As(err, &initErr) || initErr.Stage != "font" {
		t.Errorf("error = %v, expected font InitError", err)
	}
}
