package core

import "github.com/lixenwraith/diamond-run/vmath"

// Kinetic holds continuous position and velocity in arena units
type Kinetic struct {
	// Pos is the top-left corner of the entity box
	Pos vmath.Vec2
	// Vel is in arena units per second
	Vel vmath.Vec2
}
