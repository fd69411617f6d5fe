package render

import (
	"math"

	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

// Viewport maps arena units onto a cell rectangle, each axis scaled independently
type Viewport struct {
	X, Y, W, H int
}

// CellX returns the column holding arena coordinate ax, clamped to the viewport
func (v Viewport) CellX(ax float64) int {
	return v.X + clampCell(int(math.Floor(ax/parameter.ArenaWidth*float64(v.W))), v.W)
}

// CellY returns the row holding arena coordinate ay, clamped to the viewport
func (v Viewport) CellY(ay float64) int {
	return v.Y + clampCell(int(math.Floor(ay/parameter.ArenaHeight*float64(v.H))), v.H)
}

// Cells returns the inclusive cell span covered by an arena box; never empty
func (v Viewport) Cells(box vmath.Rect) (x0, y0, x1, y1 int) {
	// Right and bottom edges are exclusive
	const edge = 1e-6
	x0, y0 = v.CellX(box.X), v.CellY(box.Y)
	x1, y1 = v.CellX(box.Right()-edge), v.CellY(box.Bottom()-edge)
	return x0, y0, max(x0, x1), max(y0, y1)
}

func clampCell(c, n int) int {
	if c < 0 {
		return 0
	}
	if c >= n {
		return max(n-1, 0)
	}
	return c
}
