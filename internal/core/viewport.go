package core

// Viewport maps a fixed logical pixel space onto a grid of terminal cells.
type Viewport struct {
	LogicalW, LogicalH int // Logical size in pixels
	Cols, Rows         int // Target size in cells
}

// NewViewport creates a viewport for the given logical and cell sizes.
func NewViewport(logicalW, logicalH, cols, rows int) Viewport {
	return Viewport{LogicalW: logicalW, LogicalH: logicalH, Cols: cols, Rows: rows}
}

// CellX converts a logical x coordinate to a column, rounding down.
func (v Viewport) CellX(x int) int {
	if v.LogicalW <= 0 {
		return 0
	}
	return floorDiv(x*v.Cols, v.LogicalW)
}

// CellY converts a logical y coordinate to a row, rounding down.
func (v Viewport) CellY(y int) int {
	if v.LogicalH <= 0 {
		return 0
	}
	return floorDiv(y*v.Rows, v.LogicalH)
}

// ToCells converts a logical rectangle to the cells it touches.
// A non-empty rectangle always covers at least one cell so small objects
// like the puck never disappear.
func (v Viewport) ToCells(r Rect) Rect {
	if r.Empty() {
		return Rect{}
	}
	x0 := v.CellX(r.X)
	y0 := v.CellY(r.Y)
	x1 := v.CellX(r.Right() - 1)
	y1 := v.CellY(r.Bottom() - 1)
	return Rect{X: x0, Y: y0, W: Max(1, x1-x0+1), H: Max(1, y1-y0+1)}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
