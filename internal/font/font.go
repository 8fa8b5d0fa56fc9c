// Package font loads TrueType fonts and measures text with them.
package font

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Builtin is the name of the font compiled into the binary.
const Builtin = "gomono"

// DPI at which point sizes equal pixel sizes.
const DPI = 72

// ErrInvalidSize is returned for non-positive font sizes.
var ErrInvalidSize = errors.New("font: size must be positive")

// Font is a parsed face at a fixed pixel size.
type Font struct {
	name string
	size float64
	face xfont.Face
}

// Path returns where a named font is looked up under an assets directory.
func Path(assetsDir, name string) string {
	return filepath.Join(assetsDir, "fonts", name+".ttf")
}

// Load resolves name under assetsDir and parses it at size pixels. The
// builtin name (or an empty one) never touches the filesystem.
func Load(assetsDir, name string, size float64) (*Font, error) {
	if name == "" || name == Builtin {
		return Parse(Builtin, gomono.TTF, size)
	}

	path := Path(assetsDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: cannot read %s: %w", path, err)
	}
	return Parse(name, data, size)
}

// Parse builds a Font from raw TrueType data.
func Parse(name string, data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: cannot parse %s: %w", name, err)
	}

	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     DPI,
		Hinting: xfont.HintingFull,
	})
	return &Font{name: name, size: size, face: face}, nil
}

// Name returns the font's name.
func (f *Font) Name() string { return f.name }

// Size returns the pixel size.
func (f *Font) Size() float64 { return f.size }

// Face exposes the underlying face for front ends that draw glyphs directly.
func (f *Font) Face() xfont.Face { return f.face }

// Ascent is the distance from the top of a line to its baseline.
func (f *Font) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// LineHeight is ascent plus descent, rounded up.
func (f *Font) LineHeight() int {
	m := f.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Measure returns the size of s rendered on a single line, in pixels.
func (f *Font) Measure(s string) (w, h int) {
	if s == "" {
		return 0, f.LineHeight()
	}
	return xfont.MeasureString(f.face, s).Ceil(), f.LineHeight()
}

// Close releases the face.
func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}
	return f.face.Close()
}
