package physics

import (
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

// Steer runs the wander/seek state machine of every enemy against target (player center)
// Returns the number of mode switches performed
func Steer(enemies []core.Enemy, target vmath.Vec2, rng *vmath.FastRand) int {
	switches := 0
	for i := range enemies {
		if SteerEnemy(&enemies[i], target, rng) {
			switches++
		}
	}
	return switches
}

// SteerEnemy updates mode and velocity of one enemy; returns true on a mode switch
func SteerEnemy(e *core.Enemy, target vmath.Vec2, rng *vmath.FastRand) bool {
	if !e.SeekEligible {
		e.Mode = core.ModeWander
		wander(e, rng)
		return false
	}

	toTarget := target.Sub(e.Center())
	dist := toTarget.Magnitude()

	switched := false
	switch e.Mode {
	case core.ModeWander:
		if dist < e.DetectRadius {
			e.Mode = core.ModeSeek
			switched = true
		}
	case core.ModeSeek:
		// Exit threshold wider than entry; distances in between keep the current mode
		if dist > e.DetectRadius*parameter.SeekExitFactor {
			e.Mode = core.ModeWander
			switched = true
		}
	}

	if e.Mode == core.ModeSeek {
		seek(e, toTarget)
	} else {
		wander(e, rng)
	}
	return switched
}

// seek retargets velocity straight at the target with no inertia
func seek(e *core.Enemy, toTarget vmath.Vec2) {
	e.Vel = toTarget.WithMagnitude(e.Speed, e.Vel.Normalize(vmath.UnitX))
}

// wander occasionally kicks the heading, producing a correlated random walk
func wander(e *core.Enemy, rng *vmath.FastRand) {
	if !rng.Chance(parameter.WanderJitterChance) {
		return
	}
	heading := e.Vel.Normalize(vmath.UnitX)
	kicked := heading.Add(rng.UnitVector().Scale(parameter.WanderJitterStrength))
	e.Vel = kicked.WithMagnitude(e.Speed, heading)
}
