//go:build sdl

// Package sdl is the SDL2 front end: a native 800x600 window, an
// accelerated renderer and SDL_ttf text. Build with -tags sdl; it needs the
// SDL2 and SDL2_ttf development libraries.
package sdl

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	sdl2 "github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/vovakirdan/pong-clone/internal/config"
	"github.com/vovakirdan/pong-clone/internal/core"
	"github.com/vovakirdan/pong-clone/internal/font"
	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
	"github.com/vovakirdan/pong-clone/internal/registry"
)

// Name is the registry name of the SDL front end.
const Name = "sdl"

func init() {
	registry.Register(Name, "SDL2 window", func(cfg config.Config, logger *log.Logger) (registry.Backend, error) {
		b, err := Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
}

// Backend is the SDL2 front end. It implements registry.Backend.
type Backend struct {
	window     *sdl2.Window
	renderer   *sdl2.Renderer
	font       *ttf.Font
	ttfReady   bool
	frameDelay time.Duration
	logger     *log.Logger
}

// Open initialises SDL and SDL_ttf, creates the window and renderer and
// loads the score font. Every failure is a *platform.InitError. Open, Run
// and Close must be called from the main OS thread; the pong binary locks
// it during init.
func Open(cfg config.Config, logger *log.Logger) (*Backend, error) {
	if logger == nil {
		logger = log.Default()
	}

	b := &Backend{
		frameDelay: pong.FrameDelayForFPS(cfg.Loop.FPS),
		logger:     logger.With("backend", Name),
	}

	if err := sdl2.Init(sdl2.INIT_VIDEO | sdl2.INIT_EVENTS); err != nil {
		return nil, platform.NewInitError("SDL", err)
	}

	if err := ttf.Init(); err != nil {
		b.Close()
		return nil, platform.NewInitError("TTF support", err)
	}
	b.ttfReady = true

	window, err := sdl2.CreateWindow(
		pong.WindowTitle,
		int32(sdl2.WINDOWPOS_CENTERED),
		int32(sdl2.WINDOWPOS_CENTERED),
		pong.WindowWidth,
		pong.WindowHeight,
		0)
	if err != nil {
		b.Close()
		return nil, platform.NewInitError("window", err)
	}
	b.window = window

	renderer, err := sdl2.CreateRenderer(window, -1, uint32(sdl2.RENDERER_ACCELERATED))
	if err != nil {
		b.Close()
		return nil, platform.NewInitError("renderer", err)
	}
	b.renderer = renderer

	f, err := openFont(cfg.Assets, cfg.Font.Name, int(cfg.Font.Size))
	if err != nil {
		b.Close()
		return nil, platform.NewInitError("font", err)
	}
	b.font = f

	b.logger.Debug("window created", "width", pong.WindowWidth, "height", pong.WindowHeight, "font", cfg.Font.Name)
	return b, nil
}

// openFont loads the builtin font from memory and anything else from the
// assets directory.
func openFont(assets, name string, size int) (*ttf.Font, error) {
	if name == "" || name == font.Builtin {
		rw, err := sdl2.RWFromMem(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("sdl: cannot wrap builtin font: %w", err)
		}
		return ttf.OpenFontRW(rw, 1, size)
	}
	return ttf.OpenFont(font.Path(assets, name), size)
}

// ReadKeys implements kbd.Source from SDL's keyboard state table.
func (b *Backend) ReadKeys(dst *kbd.Snapshot) {
	copyKeys(dst, sdl2.GetKeyboardState())
}

// copyKeys converts an SDL keyboard state array. SDL scancodes and
// kbd.Scancode share the USB HID numbering.
func copyKeys(dst *kbd.Snapshot, state []uint8) {
	*dst = kbd.Snapshot{}
	for i := 0; i < len(state) && i < kbd.NumScancodes; i++ {
		if state[i] != 0 {
			dst.Set(kbd.Scancode(i), true)
		}
	}
}

// PollEvent implements platform.EventSource.
func (b *Backend) PollEvent() (platform.Event, bool) {
	ev := sdl2.PollEvent()
	if ev == nil {
		return platform.Event{}, false
	}

	switch e := ev.(type) {
	case *sdl2.QuitEvent:
		return platform.Event{Type: platform.EventQuit}, true
	case *sdl2.KeyboardEvent:
		if e.Type == uint32(sdl2.KEYDOWN) {
			return platform.Event{Type: platform.EventKey, Key: kbd.Scancode(e.Keysym.Scancode)}, true
		}
	case *sdl2.WindowEvent:
		if e.Event == uint8(sdl2.WINDOWEVENT_RESIZED) {
			return platform.Event{Type: platform.EventResize, W: int(e.Data1), H: int(e.Data2)}, true
		}
	}
	return platform.Event{Type: platform.EventOther}, true
}

func toSDLRect(r core.Rect) *sdl2.Rect {
	return &sdl2.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

func (b *Backend) SetDrawColor(c core.RGBA) {
	if err := b.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		b.logger.Debug("set draw color failed", "error", err)
	}
}

func (b *Backend) Clear() {
	if err := b.renderer.Clear(); err != nil {
		b.logger.Debug("clear failed", "error", err)
	}
}

func (b *Backend) FillRect(r core.Rect) {
	if err := b.renderer.FillRect(toSDLRect(r)); err != nil {
		b.logger.Debug("fill rect failed", "error", err)
	}
}

func (b *Backend) Present() {
	b.renderer.Present()
}

// texture is an SDL texture with its size.
type texture struct {
	tex  *sdl2.Texture
	w, h int
}

func (t *texture) Size() (int, int) { return t.w, t.h }

func (t *texture) Release() {
	t.tex.Destroy()
}

func (b *Backend) RenderText(s string, fg core.RGBA) (platform.Texture, error) {
	surface, err := b.font.RenderUTF8Blended(s, sdl2.Color{R: fg.R, G: fg.G, B: fg.B, A: fg.A})
	if err != nil {
		return nil, fmt.Errorf("sdl: cannot render text: %w", err)
	}
	defer surface.Free()

	tex, err := b.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("sdl: cannot create text texture: %w", err)
	}
	return &texture{tex: tex, w: int(surface.W), h: int(surface.H)}, nil
}

func (b *Backend) CopyTexture(t platform.Texture, dst core.Rect) {
	tt, ok := t.(*texture)
	if !ok {
		return
	}
	if err := b.renderer.Copy(tt.tex, nil, toSDLRect(dst)); err != nil {
		b.logger.Debug("copy texture failed", "error", err)
	}
}

// Run drives the game with the shared frame loop.
func (b *Backend) Run(ctx context.Context, g *pong.Game) error {
	return pong.Run(ctx, g, platform.SystemClock{}, pong.LoopOptions{FrameDelay: b.frameDelay})
}

// Close tears everything down in reverse order of creation.
func (b *Backend) Close() error {
	if b.font != nil {
		b.font.Close()
		b.font = nil
	}
	if b.ttfReady {
		ttf.Quit()
		b.ttfReady = false
	}
	if b.renderer != nil {
		b.renderer.Destroy()
		b.renderer = nil
	}
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
	sdl2.Quit()
	return nil
}
