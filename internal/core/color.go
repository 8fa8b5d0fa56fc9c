package core

import (
	"fmt"
	"image/color"
)

// RGBA is a draw color. The alpha channel is carried through to front ends
// that honour it; the terminal front end ignores it.
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	Black = RGBA{0x00, 0x00, 0x00, 0x00}
	White = RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

// Hex returns the color as a #rrggbb string.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color converts to the standard library color type.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
