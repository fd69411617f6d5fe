package level

import (
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

// place finds a top-left position for a size×size box inside the arena inset by
// padding that overlaps none of placed; falls back to (padding, padding)
func (g *Generator) place(padding, size float64, placed []vmath.Rect) vmath.Vec2 {
	pos, ok := Place(g.rng, g.arena, padding, size, placed, parameter.PlacementMaxAttempts)
	if !ok {
		g.lastFallbacks++
	}
	return pos
}

// Place runs bounded rejection sampling; ok is false when the fallback position was used
// The fallback may overlap an earlier box but always lies inside the arena
func Place(rng *vmath.FastRand, arena vmath.Rect, padding, size float64, placed []vmath.Rect, maxAttempts int) (pos vmath.Vec2, ok bool) {
	area := arena.Inset(padding)
	// Shrink so the whole box stays inside the inset area
	area.W -= size
	area.H -= size
	if area.W < 0 {
		area.W = 0
	}
	if area.H < 0 {
		area.H = 0
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := area.RandomPoint(rng)
		box := vmath.RectAt(candidate, size)
		if !overlapsAny(box, placed) {
			return candidate, true
		}
	}

	return vmath.Vec2{X: arena.X + padding, Y: arena.Y + padding}, false
}

func overlapsAny(box vmath.Rect, placed []vmath.Rect) bool {
	for _, r := range placed {
		if box.Intersects(r) {
			return true
		}
	}
	return false
}
