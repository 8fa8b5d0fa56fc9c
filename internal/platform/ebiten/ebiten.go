//go:build ebiten

// Package ebiten is the Ebiten front end: a native window driven by
// ebiten.RunGame, with the score drawn from the freetype face. Build with
// -tags ebiten.
package ebiten

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	eb "github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/core"
	"github.com/vovakirdan/pong-clone/internal/font"
	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
	"github.com/vovakirdan/pong-clone/internal/registry"
)

// Name is the registry name of the Ebiten front end.
const Name = "ebiten"

// errStopped ends RunGame once the game has seen a quit event.
var errStopped = errors.New("ebiten: game stopped")

// keys maps the Ebiten keys the game and front end use to scancodes.
var keys = map[eb.Key]kbd.Scancode{
	eb.KeyW:      kbd.ScancodeW,
	eb.KeyS:      kbd.ScancodeS,
	eb.KeyR:      kbd.ScancodeR,
	eb.KeyQ:      kbd.ScancodeQ,
	eb.KeyUp:     kbd.ScancodeUp,
	eb.KeyDown:   kbd.ScancodeDown,
	eb.KeyLeft:   kbd.ScancodeLeft,
	eb.KeyRight:  kbd.ScancodeRight,
	eb.KeySpace:  kbd.ScancodeSpace,
	eb.KeyEscape: kbd.ScancodeEscape,
	eb.KeyF1:     kbd.ScancodeF1,
}

func init() {
	registry.Register(Name, "Ebiten window", func(cfg config.Config, logger *log.Logger) (registry.Backend, error) {
		b, err := Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// Backend is the Ebiten front end. It implements registry.Backend.
//
// Ebiten hands out the screen image only inside its draw callback, so the
// Renderer methods are no-ops outside a frame.
type Backend struct {
	font   *font.Font
	screen *eb.Image
	color  core.RGBA
	events platform.EventQueue
	tps    int
	logger *log.Logger
}

// Open loads the score font. The window itself is created by Run.
func Open(cfg config.Config, logger *log.Logger) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}

	f, err := font.Load(cfg.Assets, cfg.Font.Name, cfg.Font.Size)
	if err != nil {
		return nil, platform.NewInitError("font", err)
	}

	return &Backend{
		font:   f,
		color:  core.White,
		tps:    cfg.Loop.FPS,
		logger: logger.With("backend", Name),
	}, nil
}

// ReadKeys implements kbd.Source.
func (b *Backend) ReadKeys(dst *kbd.Snapshot) {
	*dst = kbd.Snapshot{}
	for k, code := range keys {
		if eb.IsKeyPressed(k) {
			dst.Set(code, true)
		}
	}
}

// PollEvent implements platform.EventSource.
func (b *Backend) PollEvent() (platform.Event, bool) {
	return b.events.PollEvent()
}

func (b *Backend) SetDrawColor(c core.RGBA) {
	b.color = c
}

func (b *Backend) Clear() {
	if b.screen == nil {
		return
	}
	b.screen.Fill(b.color.Color())
}

func (b *Backend) FillRect(r core.Rect) {
	if b.screen == nil {
		return
	}
	ebitenutil.DrawRect(b.screen, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), b.color.Color())
}

// Present is a no-op: Ebiten shows the screen after the draw callback.
func (b *Backend) Present() {}

// textTexture is a string measured with the score font.
type textTexture struct {
	text  string
	color core.RGBA
	w, h  int
}

func (t *textTexture) Size() (int, int) { return t.w, t.h }
func (t *textTexture) Release()         {}

func (b *Backend) RenderText(s string, fg core.RGBA) (platform.Texture, error) {
	w, h := b.font.Measure(s)
	return &textTexture{text: s, color: fg, w: w, h: h}, nil
}

// CopyTexture draws the text with its top edge at dst.Y.
func (b *Backend) CopyTexture(t platform.Texture, dst core.Rect) {
	tt, ok := t.(*textTexture)
	if !ok || b.screen == nil {
		return
	}
	text.Draw(b.screen, tt.text, b.font.Face(), dst.X, dst.Y+b.font.Ascent(), tt.color.Color())
}

// runner adapts a pong.Game to ebiten.Game.
type runner struct {
	ctx   context.Context
	b     *Backend
	g     *pong.Game
	timer *pong.FrameTimer
}

func (r *runner) Update(_ *eb.Image) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	if eb.IsKeyPressed(eb.KeyEscape) {
		r.b.events.Push(platform.Event{Type: platform.EventQuit, Key: kbd.ScancodeEscape})
	}

	r.g.Update(r.timer.Tick())
	if !r.g.Running() {
		return errStopped
	}
	return nil
}

func (r *runner) Draw(screen *eb.Image) {
	r.b.screen = screen
	r.g.Draw()
	r.b.screen = nil
}

func (r *runner) Layout(_, _ int) (int, int) {
	return pong.WindowWidth, pong.WindowHeight
}

// Run opens the window and blocks until the game stops, the window is
// closed or ctx is cancelled.
func (b *Backend) Run(ctx context.Context, g *pong.Game) error {
	eb.SetWindowSize(pong.WindowWidth, pong.WindowHeight)
	eb.SetWindowTitle(pong.WindowTitle)
	if b.tps > 0 {
		eb.SetMaxTPS(b.tps)
	}

	r := &runner{
		ctx:   ctx,
		b:     b,
		g:     g,
		timer: pong.NewFrameTimer(platform.SystemClock{}),
	}

	b.logger.Debug("starting game loop", "tps", eb.MaxTPS())
	err := eb.RunGame(r)
	switch {
	case err == nil, errors.Is(err, errStopped):
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return fmt.Errorf("ebiten: %w", err)
	}
}

// Close releases the font.
func (b *Backend) Close() error {
	return b.font.Close()
}
