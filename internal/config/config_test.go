package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points the home and working directories at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML, "embedded")
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	cfg.Source = "default"
	if cfg != Default() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "font:\n  size: 24\ninput:\n  hold: 80ms\n  repeat_delay: 1s\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Font.Size != 24 {
		t.Errorf("Font.Size = %v, expected 24", cfg.Font.Size)
	}
	if cfg.Font.Name != DefaultFont {
		t.Errorf("Font.Name = %q, expected default %q", cfg.Font.Name, DefaultFont)
	}
	if cfg.Input.Hold != 80*time.Millisecond {
		t.Errorf("Input.Hold = %v, expected 80ms", cfg.Input.Hold)
	}
	if cfg.Input.RepeatDelay != time.Second {
		t.Errorf("Input.RepeatDelay = %v, expected 1s", cfg.Input.RepeatDelay)
	}
	if cfg.Backend != DefaultBackend {
		t.Errorf("Backend = %q, expected %q", cfg.Backend, DefaultBackend)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "font: [unclosed\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "font:\n  size: 0\n")

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), os.ErrNotExist},
		{"bad yaml", bad, nil},
		{"invalid values", invalid, ErrFontSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path)
			if err == nil {
				t.Fatal("Load() error = nil, expected failure")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("Load() error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	userPath := filepath.Join(home, ".pong", "config.yaml")
	localPath := filepath.Join(work, "configs", FileName)

	writeFile(t, userPath, "backend: sdl\n")
	writeFile(t, localPath, "backend: ebiten\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != "sdl" {
		t.Errorf("user config should win, Backend = %q", cfg.Backend)
	}

	// An invalid user config is skipped
	writeFile(t, userPath, "loop:\n  fps: -1\n")
	cfg, _ = Load("")
	if cfg.Backend != "ebiten" {
		t.Errorf("local config should be used, Backend = %q", cfg.Backend)
	}
	if cfg.Source != filepath.Join("configs", FileName) {
		t.Errorf("Source = %q", cfg.Source)
	}

	os.Remove(userPath)
	os.Remove(localPath)
	cfg, _ = Load("")
	if cfg.Backend != DefaultBackend || cfg.Source != "embedded" {
		t.Errorf("expected embedded default, got backend %q from %q", cfg.Backend, cfg.Source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"no backend", func(c *Config) { c.Backend = "" }, ErrNoBackend},
		{"zero font size", func(c *Config) { c.Font.Size = 0 }, ErrFontSize},
		{"negative font size", func(c *Config) { c.Font.Size = -3 }, ErrFontSize},
		{"negative fps", func(c *Config) { c.Loop.FPS = -1 }, ErrFPS},
		{"capped fps", func(c *Config) { c.Loop.FPS = 60 }, nil},
		{"negative hold", func(c *Config) { c.Input.Hold = -time.Millisecond }, ErrHold},
		{"zero hold", func(c *Config) { c.Input.Hold = 0 }, nil},
		{"negative repeat delay", func(c *Config) { c.Input.RepeatDelay = -time.Millisecond }, ErrRepeat},
		{"zero repeat delay", func(c *Config) { c.Input.RepeatDelay = 0 }, nil},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, ErrLogLevel},
		{"empty level", func(c *Config) { c.Log.Level = "" }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.want == nil && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tc := range tests {
		cfg := Default()
		cfg.Log.Level = tc.level
		got, err := cfg.LogLevel()
		if err != nil {
			t.Errorf("LogLevel(%q) error = %v", tc.level, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("LogLevel(%q) = %v, expected %v", tc.level, got, tc.expected)
		}
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"backend: tui", "name: gomono", "hold: 150ms", "repeat_delay: 700ms", "level: info"} {
		if !strings.Contains(out, want) {
			t.Errorf("Marshal() output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "source") {
		t.Errorf("Marshal() should not write Source:\n%s", out)
	}

	back, err := parse(data, "roundtrip")
	if err != nil {
		t.Fatalf("parse(Marshal()) error = %v", err)
	}
	back.Source = "default"
	if back != Default() {
		t.Errorf("round trip = %+v, expected %+v", back, Default())
	}
}
