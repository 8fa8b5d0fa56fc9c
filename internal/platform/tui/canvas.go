package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/pong-clone/internal/core"
	"github.com/vovakirdan/pong-clone/internal/font"
	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// fillRune is used for every filled rectangle.
const fillRune = '█'

// canvas implements platform.Renderer and platform.TextRenderer on a cell
// buffer. Draw calls land in the back buffer; Present renders it to the
// frame string shown by the model.
type canvas struct {
	screen *core.Screen
	view   core.Viewport
	color  core.RGBA
	font   *font.Font
	frame  string
}

func newCanvas(cols, rows int, f *font.Font) *canvas {
	c := &canvas{
		screen: core.NewScreen(cols, rows),
		color:  core.White,
		font:   f,
	}
	c.view = core.NewViewport(pong.WindowWidth, pong.WindowHeight, c.screen.Width(), c.screen.Height())
	return c
}

// Resize changes the number of cells the logical window maps onto.
func (c *canvas) Resize(cols, rows int) {
	c.screen.Resize(cols, rows)
	c.view = core.NewViewport(pong.WindowWidth, pong.WindowHeight, c.screen.Width(), c.screen.Height())
}

// Size returns the canvas size in cells.
func (c *canvas) Size() (cols, rows int) {
	return c.screen.Width(), c.screen.Height()
}

func (c *canvas) SetDrawColor(col core.RGBA) {
	c.color = col
}

// Clear blanks every cell. The terminal background stands in for the
// clear color.
func (c *canvas) Clear() {
	c.screen.Clear()
}

func (c *canvas) FillRect(r core.Rect) {
	c.screen.DrawRect(c.view.ToCells(r), fillRune, c.color)
}

func (c *canvas) Present() {
	c.frame = RenderScreen(c.screen)
}

// Frame returns the last presented frame.
func (c *canvas) Frame() string {
	return c.frame
}

// textTexture is a string laid out with the configured font. Its size is in
// logical pixels so the game can position it like any other texture.
type textTexture struct {
	text  string
	color core.RGBA
	w, h  int
}

func (t *textTexture) Size() (int, int) { return t.w, t.h }
func (t *textTexture) Release()         {}

func (c *canvas) RenderText(s string, fg core.RGBA) (platform.Texture, error) {
	w, h := c.font.Measure(s)
	return &textTexture{text: s, color: fg, w: w, h: h}, nil
}

// CopyTexture centres the text horizontally on the cells dst covers, one
// character per cell, on the first row of dst.
func (c *canvas) CopyTexture(t platform.Texture, dst core.Rect) {
	tt, ok := t.(*textTexture)
	if !ok {
		return
	}
	cells := c.view.ToCells(dst)
	x := cells.X + (cells.W-utf8.RuneCountInString(tt.text))/2
	c.screen.DrawText(x, cells.Y, tt.text, tt.color)
}
