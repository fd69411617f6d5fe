package vmath

// Rect is an axis-aligned bounding box anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAt builds a square box of the given size at pos
func RectAt(pos Vec2, size float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size, H: size}
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects reports strict overlap; boxes sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the whole of o lies inside r, edges inclusive
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Inset shrinks the box by margin on every side; never returns negative extents
func (r Rect) Inset(margin float64) Rect {
	out := Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// RandomPoint returns a uniform point within the box
func (r Rect) RandomPoint(rng *FastRand) Vec2 {
	return Vec2{
		X: rng.Range(r.X, r.X+r.W),
		Y: rng.Range(r.Y, r.Y+r.H),
	}
}
