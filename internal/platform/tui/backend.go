package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/font"
	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
	"github.com/vovakirdan/pong-clone/internal/registry"
)

// Name is the registry name of the terminal front end.
const Name = "tui"

const (
	defaultTickRate = 60
	defaultCols     = 80
	defaultRows     = 24
)

func init() {
	registry.Register(Name, "Terminal (Bubble Tea)", func(cfg config.Config, logger *log.Logger) (registry.Backend, error) {
		b, err := Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// Backend is the terminal front end. It implements registry.Backend.
type Backend struct {
	*canvas

	keys     *heldKeys
	events   platform.EventQueue
	keyMap   KeyMap
	tickRate int
	logger   *log.Logger

	programOpts []tea.ProgramOption
}

// Open loads the score font and sizes the canvas to the terminal.
//
// The program runs on the alternate screen, which hides stderr, so unless
// a log file is configured the returned backend logs nowhere.
func Open(cfg config.Config, logger *log.Logger) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}

	f, err := font.Load(cfg.Assets, cfg.Font.Name, cfg.Font.Size)
	if err != nil {
		return nil, platform.NewInitError("font", err)
	}

	tickRate := cfg.Loop.FPS
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}

	quiet := logger.With("backend", Name)
	if cfg.Log.File == "" {
		quiet.SetOutput(io.Discard)
	}
	quiet.Debug("font loaded", "font", f.Name(), "size", f.Size())

	cols, rows := terminalSize()
	return &Backend{
		canvas:   newCanvas(cols, rows, f),
		keys:     newHeldKeys(platform.SystemClock{}, cfg.Input.Hold, cfg.Input.RepeatDelay),
		keyMap:   DefaultKeyMap(),
		tickRate: tickRate,
		logger:   quiet,
	}, nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (cols, rows int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultCols, defaultRows
	}
	return w, h
}

// ReadKeys implements kbd.Source.
func (b *Backend) ReadKeys(dst *kbd.Snapshot) {
	b.keys.ReadKeys(dst)
}

// PollEvent implements platform.EventSource.
func (b *Backend) PollEvent() (platform.Event, bool) {
	return b.events.PollEvent()
}

// Logger returns the logger the game should use while the terminal is
// owned by the program.
func (b *Backend) Logger() *log.Logger {
	return b.logger
}

// Run starts the Bubble Tea program and blocks until the game stops.
func (b *Backend) Run(ctx context.Context, g *pong.Game) error {
	model := newModel(b, g, platform.SystemClock{})

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	}, b.programOpts...)

	b.logger.Debug("starting program", "tick_rate", b.tickRate)
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Close releases the font.
func (b *Backend) Close() error {
	return b.font.Close()
}
