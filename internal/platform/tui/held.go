package tui

import (
	"time"

	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// heldKeys emulates a key-state table on top of a terminal, which only
// reports presses. The first press marks the key down until the terminal's
// auto-repeat can take over (repeatDelay); each repeat then extends it by
// the shorter hold window.
type heldKeys struct {
	clock       platform.Clock
	hold        time.Duration
	repeatDelay time.Duration
	until       map[kbd.Scancode]time.Time
	pending     map[kbd.Scancode]bool // Pressed since the last read
}

func newHeldKeys(clock platform.Clock, hold, repeatDelay time.Duration) *heldKeys {
	return &heldKeys{
		clock:       clock,
		hold:        hold,
		repeatDelay: repeatDelay,
		until:       make(map[kbd.Scancode]time.Time),
		pending:     make(map[kbd.Scancode]bool),
	}
}

// Press records a key press at the current time. A press while the key is
// still down counts as a repeat.
func (h *heldKeys) Press(k kbd.Scancode) {
	if !k.Valid() {
		return
	}
	now := h.clock.Now()

	window := max(h.hold, h.repeatDelay)
	if t, ok := h.until[k]; ok && now.Before(t) {
		window = h.hold
	}
	if t := now.Add(window); t.After(h.until[k]) {
		h.until[k] = t
	}
	h.pending[k] = true
}

// ReadKeys implements kbd.Source. A key reads as down while its hold window
// is open, and for at least one read after any press, so a tap shorter than
// a frame is never lost.
func (h *heldKeys) ReadKeys(dst *kbd.Snapshot) {
	*dst = kbd.Snapshot{}
	now := h.clock.Now()

	for k, t := range h.until {
		if now.Before(t) {
			dst.Set(k, true)
		} else {
			delete(h.until, k)
		}
	}
	for k := range h.pending {
		dst.Set(k, true)
		delete(h.pending, k)
	}
}
