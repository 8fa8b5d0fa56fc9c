package pong

import (
	"context"
	"time"

	"github.com/vovakirdan/pong-clone/internal/platform"
)

// FrameTimer turns clock readings into per-frame elapsed seconds.
type FrameTimer struct {
	clock platform.Clock
	last  time.Time
}

// NewFrameTimer starts timing from the clock's current reading.
func NewFrameTimer(clock platform.Clock) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.Now()}
}

// Tick returns the seconds elapsed since the previous Tick (or since the
// timer was created). Never negative.
func (t *FrameTimer) Tick() float64 {
	now := t.clock.Now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

// LoopOptions tunes Run.
type LoopOptions struct {
	// FrameDelay is slept after every frame. Zero runs uncapped and relies on
	// the renderer's own pacing (vsync), if any.
	FrameDelay time.Duration
}

// FrameDelayForFPS converts a frame rate to a FrameDelay. Zero or negative
// rates mean uncapped.
func FrameDelayForFPS(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Run drives the game until it stops or ctx is cancelled: each iteration
// computes dt from the clock, updates, then draws. Cancelling ctx stops the
// game.
func Run(ctx context.Context, g *Game, clock platform.Clock, opts LoopOptions) error {
	timer := NewFrameTimer(clock)

	for g.Running() {
		if err := ctx.Err(); err != nil {
			g.Stop()
			return err
		}

		g.Update(timer.Tick())
		g.Draw()

		if opts.FrameDelay > 0 {
			select {
			case <-ctx.Done():
				g.Stop()
				return ctx.Err()
			case <-time.After(opts.FrameDelay):
			}
		}
	}
	return nil
}
