// Package pong implements a two-player Pong game: two paddles, a bouncing
// puck and score tracking. The left paddle is driven by W/S, the right
// paddle by the Up/Down arrows.
//
// Game holds all state and talks to the outside world only through the
// platform interfaces, so any front end (terminal, SDL, Ebiten) can run it.
package pong

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-clone/internal/core"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// Window and entity dimensions, in logical pixels.
const (
	WindowWidth   = 800
	WindowHeight  = 600
	WindowTitle   = "Pong Clone"
	ScoreFontSize = 16
	PaddleWidth   = 25
	PaddleHeight  = 75
	PaddleSpeed   = 500.0 // pixels per second
	Padding       = 5
	PuckSize      = 10
	PuckSpeed     = 250.0 // pixels per second
)

// Key bindings.
const (
	LeftUpKey    = kbd.ScancodeW
	LeftDownKey  = kbd.ScancodeS
	RightUpKey   = kbd.ScancodeUp
	RightDownKey = kbd.ScancodeDown
	RestartKey   = kbd.ScancodeR
)

// Paddle is a player-controlled vertical bar.
type Paddle struct {
	Score int
	PosY  float64 // Top edge
}

// Puck is the moving ball. PosX/PosY are its top-left corner.
// TODO: collisions should be computed from the puck's centre point rather
// than its top-left corner.
type Puck struct {
	PosX, PosY float64
	VelX, VelY float64 // pixels per second
}

// Game implements the Pong game logic.
type Game struct {
	left    Paddle
	right   Paddle
	puck    Puck
	running bool

	keys   *kbd.State
	events platform.EventSource
	gfx    platform.Renderer
	text   platform.TextRenderer
	logger *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for per-frame diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New creates a running game wired to the given collaborators. The paddles
// start vertically centred and the puck is served to the right.
func New(keys *kbd.State, events platform.EventSource, gfx platform.Renderer, text platform.TextRenderer, opts ...Option) *Game {
	g := &Game{
		running: true,
		keys:    keys,
		events:  events,
		gfx:     gfx,
		text:    text,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.centrePaddles()
	g.ResetGame()
	return g
}

// Running reports whether the game is still running. Once a quit event has
// been seen it stays false.
func (g *Game) Running() bool {
	return g.running
}

// Stop ends the game as if a quit event had been received.
func (g *Game) Stop() {
	g.running = false
}

// ResetGame zeroes both scores and serves the puck to the right. Paddles
// stay where they are.
func (g *Game) ResetGame() {
	g.left.Score = 0
	g.right.Score = 0
	g.ResetPuck(PuckSpeed)
}

func (g *Game) centrePaddles() {
	centre := float64(WindowHeight-PaddleHeight) / 2
	g.left.PosY = centre
	g.right.PosY = centre
}

// ResetPuck moves the puck to the centre of the screen with the given
// horizontal velocity. The vertical velocity is always PuckSpeed.
func (g *Game) ResetPuck(velX float64) {
	g.puck.PosX = WindowWidth/2 - PuckSize/2
	g.puck.PosY = WindowHeight/2 - PuckSize/2
	g.puck.VelX = velX
	g.puck.VelY = PuckSpeed
}

// Update advances the simulation by dt seconds.
//
// The order of the steps matters: paddles move before the puck, and goal
// checks run before wall and paddle bounces, so a puck crossing a goal line
// and a paddle band in the same frame always scores.
func (g *Game) Update(dt float64) {
	if g.keys != nil {
		g.keys.Update()
		if g.keys.WasPressed(RestartKey) {
			g.ResetGame()
		}
	}

	g.movePaddles(dt)

	g.puck.PosX += g.puck.VelX * dt
	g.puck.PosY += g.puck.VelY * dt

	clampPaddle(&g.left)
	clampPaddle(&g.right)

	g.checkScoring()
	g.bounceWalls()
	g.bouncePaddles()

	g.drainEvents()
}

// movePaddles applies keyboard input. Up and down are not exclusive; holding
// both cancels out.
func (g *Game) movePaddles(dt float64) {
	if g.keys == nil {
		return
	}
	step := PaddleSpeed * dt

	if g.keys.IsDown(LeftUpKey) {
		g.left.PosY -= step
	}
	if g.keys.IsDown(LeftDownKey) {
		g.left.PosY += step
	}

	if g.keys.IsDown(RightUpKey) {
		g.right.PosY -= step
	}
	if g.keys.IsDown(RightDownKey) {
		g.right.PosY += step
	}
}

// clampPaddle keeps a paddle on screen.
func clampPaddle(p *Paddle) {
	if p.PosY < 0 {
		p.PosY = 0
	} else if p.PosY > WindowHeight-PaddleHeight {
		p.PosY = WindowHeight - PaddleHeight
	}
}

// checkScoring awards a point when the puck reaches either side.
func (g *Game) checkScoring() {
	if g.puck.PosX+PuckSize >= WindowWidth {
		// Right edge: left scores, puck keeps heading right
		g.left.Score++
		g.ResetPuck(math.Abs(g.puck.VelX))
	}

	if g.puck.PosX <= 0 {
		// Left edge: right scores, puck keeps heading left
		g.right.Score++
		g.ResetPuck(-math.Abs(g.puck.VelX))
	}
}

// bounceWalls forces the vertical direction away from the top and bottom
// edges. This sets the sign rather than negating it, so a puck already
// moving away is left alone.
// TODO: a puck can still zig-zag along an edge; reflect the position too.
func (g *Game) bounceWalls() {
	if g.puck.PosY < 0 {
		g.puck.VelY = math.Abs(g.puck.VelY)
	}
	if g.puck.PosY > WindowHeight {
		g.puck.VelY = -math.Abs(g.puck.VelY)
	}
}

// bouncePaddles sends the puck back when it is inside a paddle's band.
// The band test is strict: touching a paddle's exact top or bottom edge
// does not count.
func (g *Game) bouncePaddles() {
	if g.puck.PosX <= Padding+PaddleWidth && inBand(g.puck.PosY, g.left) {
		g.puck.VelX = math.Abs(g.puck.VelX)
	}

	if g.puck.PosX >= WindowWidth-Padding-PaddleWidth && inBand(g.puck.PosY, g.right) {
		g.puck.VelX = -math.Abs(g.puck.VelX)
	}
}

func inBand(y float64, p Paddle) bool {
	return y > p.PosY && y < p.PosY+PaddleHeight
}

// drainEvents empties the event queue. Every pending event is consumed even
// after a quit has been seen.
func (g *Game) drainEvents() {
	if g.events == nil {
		return
	}
	for {
		evt, ok := g.events.PollEvent()
		if !ok {
			return
		}
		if evt.Type == platform.EventQuit {
			g.running = false
		}
	}
}

// Draw renders the current frame: scores, paddles and puck on black.
func (g *Game) Draw() {
	if g.gfx == nil {
		return
	}

	g.gfx.SetDrawColor(core.Black)
	g.gfx.Clear()

	g.drawScores()
	g.drawPaddles()
	g.drawPuck()

	g.gfx.Present()
}

// ScoreText returns the scoreboard string, e.g. "3 : 1".
func (g *Game) ScoreText() string {
	return fmt.Sprintf("%d : %d", g.left.Score, g.right.Score)
}

func (g *Game) drawScores() {
	if g.text == nil {
		return
	}

	tex, err := g.text.RenderText(g.ScoreText(), core.White)
	if err != nil {
		g.logger.Debug("score render failed", "error", err)
		return
	}
	defer tex.Release()

	w, h := tex.Size()
	dst := core.NewRect(WindowWidth/2-w/2, Padding, w, h)
	g.text.CopyTexture(tex, dst)
}

// LeftPaddleRect returns the draw rectangle of the left paddle.
func (g *Game) LeftPaddleRect() core.Rect {
	return core.RectFromFloat(Padding, g.left.PosY, PaddleWidth, PaddleHeight)
}

// RightPaddleRect returns the draw rectangle of the right paddle.
func (g *Game) RightPaddleRect() core.Rect {
	return core.RectFromFloat(WindowWidth-PaddleWidth-Padding, g.right.PosY, PaddleWidth, PaddleHeight)
}

// PuckRect returns the draw rectangle of the puck.
func (g *Game) PuckRect() core.Rect {
	return core.RectFromFloat(g.puck.PosX, g.puck.PosY, PuckSize, PuckSize)
}

func (g *Game) drawPaddles() {
	g.gfx.SetDrawColor(core.White)
	g.gfx.FillRect(g.LeftPaddleRect())
	g.gfx.FillRect(g.RightPaddleRect())
}

func (g *Game) drawPuck() {
	g.gfx.SetDrawColor(core.White)
	g.gfx.FillRect(g.PuckRect())
}
