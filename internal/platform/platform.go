// Package platform defines the operations the game needs from a windowing,
// rendering and text library. Front ends implement these interfaces; the game
// logic only ever talks to them.
package platform

import (
	"github.com/vovakirdan/pong-clone/internal/core"
	"github.com/vovakirdan/pong-clone/internal/kbd"
)

// KeySource supplies bulk keyboard snapshots indexed by scancode.
type KeySource = kbd.Source

// EventSource supplies discrete input events.
type EventSource interface {
	// PollEvent returns the next pending event, or false when the queue is empty.
	PollEvent() (Event, bool)
}

// Renderer draws filled rectangles into a frame buffer.
type Renderer interface {
	SetDrawColor(c core.RGBA)
	Clear()
	FillRect(r core.Rect)
	Present()
}

// Texture is a rendered piece of text owned by the front end.
type Texture interface {
	// Size returns the rendered size in logical pixels.
	Size() (w, h int)
	// Release frees the resources held by the texture.
	Release()
}

// TextRenderer turns strings into textures and copies them to the frame.
type TextRenderer interface {
	RenderText(s string, fg core.RGBA) (Texture, error)
	CopyTexture(t Texture, dst core.Rect)
}
