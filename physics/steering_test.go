package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

// enemyAt places an enemy so that its center sits at c
func enemyAt(c vmath.Vec2, eligible bool) core.Enemy {
	size := 20.0
	return core.Enemy{
		Kinetic:      core.Kinetic{Pos: vmath.Vec2{X: c.X - size/2, Y: c.Y - size/2}, Vel: vmath.Vec2{X: 0, Y: 100}},
		Size:         size,
		Speed:        100,
		DetectRadius: 200,
		SeekEligible: eligible,
		Mode:         core.ModeWander,
	}
}

func TestSeekHysteresisDeadBand(t *testing.T) {
	rng := vmath.NewFastRand(1)
	player := vmath.Vec2{X: 500, Y: 300}
	e := enemyAt(vmath.Vec2{X: 500 - 150, Y: 300}, true)

	// Inside radius: enter seek
	if !SteerEnemy(&e, player, rng) || e.Mode != core.ModeSeek {
		t.Fatalf("mode = %s, want seek inside radius", e.Mode)
	}

	// Player retreats into the dead band (radius < d < 1.25*radius): stay seeking
	for _, d := range []float64{210, 230, 249} {
		target := vmath.Vec2{X: e.Center().X + d, Y: e.Center().Y}
		if SteerEnemy(&e, target, rng) {
			t.Fatalf("switched at distance %v inside dead band", d)
		}
		if e.Mode != core.ModeSeek {
			t.Fatalf("mode = %s at distance %v, want seek", e.Mode, d)
		}
	}

	// Beyond exit threshold: revert to wander
	target := vmath.Vec2{X: e.Center().X + 251, Y: e.Center().Y}
	if !SteerEnemy(&e, target, rng) || e.Mode != core.ModeWander {
		t.Fatalf("mode = %s beyond exit threshold, want wander", e.Mode)
	}

	// Back in the dead band from outside: entry still requires d < radius
	target = vmath.Vec2{X: e.Center().X + 220, Y: e.Center().Y}
	if SteerEnemy(&e, target, rng) || e.Mode != core.ModeWander {
		t.Fatalf("mode = %s in dead band from outside, want wander", e.Mode)
	}
}

func TestSeekVelocityPointsAtTarget(t *testing.T) {
	rng := vmath.NewFastRand(2)
	e := enemyAt(vmath.Vec2{X: 100, Y: 100}, true)
	target := vmath.Vec2{X: 160, Y: 180}

	SteerEnemy(&e, target, rng)

	if e.Mode != core.ModeSeek {
		t.Fatalf("mode = %s, want seek", e.Mode)
	}
	want := vmath.Vec2{X: 60, Y: 80}.WithMagnitude(e.Speed, vmath.UnitX)
	if math.Abs(e.Vel.X-want.X) > 1e-9 || math.Abs(e.Vel.Y-want.Y) > 1e-9 {
		t.Errorf("vel = %+v, want %+v", e.Vel, want)
	}
}

func TestSeekCoincidentPositionKeepsSpeed(t *testing.T) {
	rng := vmath.NewFastRand(3)
	e := enemyAt(vmath.Vec2{X: 300, Y: 300}, true)
	SteerEnemy(&e, e.Center(), rng)

	if math.IsNaN(e.Vel.X) || math.IsNaN(e.Vel.Y) {
		t.Fatalf("velocity became NaN: %+v", e.Vel)
	}
	if math.Abs(e.Vel.Magnitude()-e.Speed) > 1e-9 {
		t.Errorf("|vel| = %v, want %v", e.Vel.Magnitude(), e.Speed)
	}
}

func TestIneligibleNeverSeeks(t *testing.T) {
	rng := vmath.NewFastRand(4)
	e := enemyAt(vmath.Vec2{X: 300, Y: 300}, false)
	for i := 0; i < 500; i++ {
		if SteerEnemy(&e, e.Center(), rng) {
			t.Fatal("ineligible enemy switched mode")
		}
		if e.Mode != core.ModeWander {
			t.Fatalf("ineligible enemy mode = %s", e.Mode)
		}
	}
}

func TestWanderPreservesSpeedAndJitters(t *testing.T) {
	rng := vmath.NewFastRand(5)
	enemies := []core.Enemy{
		enemyAt(vmath.Vec2{X: 100, Y: 100}, false),
		enemyAt(vmath.Vec2{X: 800, Y: 500}, true),
	}
	far := vmath.Vec2{X: 10000, Y: 10000}
	initial := enemies[0].Vel

	changed := false
	for tick := 0; tick < 2000; tick++ {
		Steer(enemies, far, rng)
		for i, e := range enemies {
			if e.Mode != core.ModeWander {
				t.Fatalf("enemy %d seeking a far target", i)
			}
			if math.Abs(e.Vel.Magnitude()-e.Speed) > 1e-9 {
				t.Fatalf("tick %d: enemy %d |vel| = %v, want %v", tick, i, e.Vel.Magnitude(), e.Speed)
			}
		}
		if enemies[0].Vel != initial {
			changed = true
		}
	}
	if !changed {
		t.Error("wander never changed heading in 2000 ticks")
	}
}

func TestSteerCountsSwitches(t *testing.T) {
	rng := vmath.NewFastRand(6)
	target := vmath.Vec2{X: 400, Y: 400}
	enemies := []core.Enemy{
		enemyAt(vmath.Vec2{X: 350, Y: 400}, true),
		enemyAt(vmath.Vec2{X: 380, Y: 400}, true),
		enemyAt(vmath.Vec2{X: 390, Y: 400}, false),
		enemyAt(vmath.Vec2{X: 900, Y: 900}, true),
	}
	if got := Steer(enemies, target, rng); got != 2 {
		t.Errorf("switches = %d, want 2", got)
	}
	if parameter.SeekExitFactor <= 1 {
		t.Error("exit factor must widen the band")
	}
}
