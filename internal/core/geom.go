// Package core provides geometry, color and screen-buffer primitives shared by
// the game and its front ends. It has no third-party dependencies so the game
// logic stays pure and testable.
package core

// Rect is an integer axis-aligned rectangle in logical pixels or cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// RectFromFloat truncates float coordinates toward zero, the way a C cast
// to int does when building a draw rectangle.
func RectFromFloat(x, y float64, w, h int) Rect {
	return Rect{X: int(x), Y: int(y), W: w, H: h}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
