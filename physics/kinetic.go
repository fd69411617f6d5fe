package physics

import (
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/vmath"
)

// Integrate advances position by velocity: p = p + v*dt
func Integrate(k *core.Kinetic, dt float64) {
	k.Pos = k.Pos.Add(k.Vel.Scale(dt))
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
// Position is clamped to [minX, maxX]; an outward velocity component is negated
func ReflectBoundsX(k *core.Kinetic, minX, maxX float64) bool {
	switch {
	case k.Pos.X <= minX && k.Vel.X < 0:
		k.Pos.X = minX
		k.Vel = vmath.ReflectAxisX(k.Vel)
		return true
	case k.Pos.X >= maxX && k.Vel.X > 0:
		k.Pos.X = maxX
		k.Vel = vmath.ReflectAxisX(k.Vel)
		return true
	}
	k.Pos.X = vmath.Clamp(k.Pos.X, minX, maxX)
	return false
}

// ReflectBoundsY handles vertical boundary collision, returns true if reflection occurred
// Position is clamped to [minY, maxY]; an outward velocity component is negated
func ReflectBoundsY(k *core.Kinetic, minY, maxY float64) bool {
	switch {
	case k.Pos.Y <= minY && k.Vel.Y < 0:
		k.Pos.Y = minY
		k.Vel = vmath.ReflectAxisY(k.Vel)
		return true
	case k.Pos.Y >= maxY && k.Vel.Y > 0:
		k.Pos.Y = maxY
		k.Vel = vmath.ReflectAxisY(k.Vel)
		return true
	}
	k.Pos.Y = vmath.Clamp(k.Pos.Y, minY, maxY)
	return false
}

// ReflectBounds keeps a size×size box inside arena, axes handled independently
func ReflectBounds(k *core.Kinetic, size float64, arena vmath.Rect) bool {
	rx := ReflectBoundsX(k, arena.X, arena.Right()-size)
	ry := ReflectBoundsY(k, arena.Y, arena.Bottom()-size)
	return rx || ry
}

// MovePlayer displaces the player along the normalized intent direction at maxSpeed
// and clamps the box inside arena
func MovePlayer(p *core.Player, in core.InputSample, maxSpeed, dt float64, arena vmath.Rect) {
	dx, dy := in.Direction()
	dir := vmath.Vec2{X: dx, Y: dy}
	if !dir.IsZero() {
		p.Pos = p.Pos.Add(dir.Normalize(vmath.Vec2{}).Scale(maxSpeed * dt))
	}
	p.Pos.X = vmath.Clamp(p.Pos.X, arena.X, arena.Right()-p.Size)
	p.Pos.Y = vmath.Clamp(p.Pos.Y, arena.Y, arena.Bottom()-p.Size)
}

// MoveEnemies integrates every enemy and applies wall reflection, returns the bounce count
func MoveEnemies(enemies []core.Enemy, dt float64, arena vmath.Rect) int {
	bounces := 0
	for i := range enemies {
		e := &enemies[i]
		Integrate(&e.Kinetic, dt)
		if ReflectBounds(&e.Kinetic, e.Size, arena) {
			bounces++
		}
	}
	return bounces
}
