package core

import "github.com/lixenwraith/diamond-run/vmath"

// Player is the controlled avatar; it has no velocity of its own
type Player struct {
	Pos  vmath.Vec2
	Size float64
}

// Box returns the collision rectangle
func (p Player) Box() vmath.Rect { return vmath.RectAt(p.Pos, p.Size) }

// Center returns the midpoint of the collision box
func (p Player) Center() vmath.Vec2 { return p.Box().Center() }

// Enemy is a hostile entity. Speed, DetectRadius and SeekEligible are assigned
// once at spawn and never recomputed
type Enemy struct {
	Kinetic
	Size         float64
	Kind         EnemyKind
	Color        RGB
	Speed        float64
	DetectRadius float64
	SeekEligible bool
	Mode         SteerMode
}

// Box returns the collision rectangle
func (e Enemy) Box() vmath.Rect { return vmath.RectAt(e.Pos, e.Size) }

// Center returns the midpoint of the collision box
func (e Enemy) Center() vmath.Vec2 { return e.Box().Center() }

// Goal is the level target, drawn as a diamond but collided as a box
type Goal struct {
	Pos  vmath.Vec2
	Size float64
}

// Box returns the collision rectangle
func (g Goal) Box() vmath.Rect { return vmath.RectAt(g.Pos, g.Size) }

// LevelState is the complete entity set of one level; created and discarded wholesale
type LevelState struct {
	Level   int
	Player  Player
	Goal    Goal
	Enemies []Enemy
}

// Clone returns a copy that shares no memory with ls
func (ls LevelState) Clone() LevelState {
	out := ls
	if ls.Enemies != nil {
		out.Enemies = make([]Enemy, len(ls.Enemies))
		copy(out.Enemies, ls.Enemies)
	}
	return out
}
