package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

var testArena = vmath.Rect{W: parameter.ArenaWidth, H: parameter.ArenaHeight}

func TestEnemyReflectsAtLeftWall(t *testing.T) {
	enemies := []core.Enemy{{
		Kinetic: core.Kinetic{Pos: vmath.Vec2{X: 0, Y: 100}, Vel: vmath.Vec2{X: -50, Y: 0}},
		Size:    30,
		Speed:   50,
	}}

	bounces := MoveEnemies(enemies, 0.016, testArena)

	e := enemies[0]
	if bounces != 1 {
		t.Errorf("bounces = %d, want 1", bounces)
	}
	if e.Vel.X <= 0 {
		t.Errorf("vel.X = %v, want positive after reflection", e.Vel.X)
	}
	if e.Pos.X != 0 {
		t.Errorf("pos.X = %v, want clamped to 0", e.Pos.X)
	}
}

func TestReflectBoundsXAtBoundary(t *testing.T) {
	k := core.Kinetic{Pos: vmath.Vec2{X: 0}, Vel: vmath.Vec2{X: -10, Y: 3}}
	if !ReflectBoundsX(&k, 0, 100) {
		t.Fatal("expected reflection at boundary with outward velocity")
	}
	if k.Vel.X != 10 || k.Vel.Y != 3 || k.Pos.X != 0 {
		t.Errorf("got pos %+v vel %+v", k.Pos, k.Vel)
	}

	// Inward velocity at the wall is left alone
	k = core.Kinetic{Pos: vmath.Vec2{X: 0}, Vel: vmath.Vec2{X: 10}}
	if ReflectBoundsX(&k, 0, 100) {
		t.Error("unexpected reflection for inward velocity")
	}
}

func TestReflectRightAndBottom(t *testing.T) {
	size := 20.0
	k := core.Kinetic{
		Pos: vmath.Vec2{X: testArena.W - size + 5, Y: testArena.H - size + 2},
		Vel: vmath.Vec2{X: 30, Y: 40},
	}
	if !ReflectBounds(&k, size, testArena) {
		t.Fatal("expected reflection in corner")
	}
	if k.Vel != (vmath.Vec2{X: -30, Y: -40}) {
		t.Errorf("vel = %+v, want both components negated", k.Vel)
	}
	if k.Pos.X != testArena.W-size || k.Pos.Y != testArena.H-size {
		t.Errorf("pos = %+v, want clamped to far corner", k.Pos)
	}
}

func TestEnemiesStayInsideAndKeepSpeed(t *testing.T) {
	rng := vmath.NewFastRand(8)
	enemies := make([]core.Enemy, 12)
	for i := range enemies {
		speed := 80 + float64(i)*10
		enemies[i] = core.Enemy{
			Kinetic: core.Kinetic{
				Pos: testArena.Inset(100).RandomPoint(rng),
				Vel: rng.UnitVector().Scale(speed),
			},
			Size:  30,
			Speed: speed,
		}
	}

	for tick := 0; tick < 3000; tick++ {
		MoveEnemies(enemies, 0.033, testArena)
		for i, e := range enemies {
			if !testArena.Contains(e.Box()) {
				t.Fatalf("tick %d: enemy %d box %+v left arena", tick, i, e.Box())
			}
			if math.Abs(e.Vel.Magnitude()-e.Speed) > 1e-6 {
				t.Fatalf("tick %d: enemy %d speed %v, want %v", tick, i, e.Vel.Magnitude(), e.Speed)
			}
		}
	}
}

func TestMovePlayer(t *testing.T) {
	start := vmath.Vec2{X: 100, Y: 100}
	dt := 0.02
	step := parameter.PlayerMaxSpeed * dt

	tests := []struct {
		name string
		in   core.InputSample
		want vmath.Vec2
	}{
		{"idle", core.InputSample{}, start},
		{"right", core.InputSample{Right: true}, vmath.Vec2{X: 100 + step, Y: 100}},
		{"up", core.InputSample{Up: true}, vmath.Vec2{X: 100, Y: 100 - step}},
		{"cancel", core.InputSample{Left: true, Right: true}, start},
		{"diagonal", core.InputSample{Down: true, Right: true}, vmath.Vec2{X: 100 + step/math.Sqrt2, Y: 100 + step/math.Sqrt2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := core.Player{Pos: start, Size: parameter.PlayerSize}
			MovePlayer(&p, tc.in, parameter.PlayerMaxSpeed, dt, testArena)
			if math.Abs(p.Pos.X-tc.want.X) > 1e-9 || math.Abs(p.Pos.Y-tc.want.Y) > 1e-9 {
				t.Errorf("pos = %+v, want %+v", p.Pos, tc.want)
			}
		})
	}
}

func TestPlayerClampedToArena(t *testing.T) {
	inputs := []core.InputSample{
		{Left: true, Up: true},
		{Right: true, Down: true},
		{Right: true, Up: true},
		{Left: true, Down: true},
	}
	p := core.Player{Pos: vmath.Vec2{X: 400, Y: 300}, Size: parameter.PlayerSize}
	for _, in := range inputs {
		for tick := 0; tick < 400; tick++ {
			MovePlayer(&p, in, parameter.PlayerMaxSpeed, 0.033, testArena)
			if p.Pos.X < 0 || p.Pos.Y < 0 ||
				p.Pos.X > testArena.W-p.Size || p.Pos.Y > testArena.H-p.Size {
				t.Fatalf("player escaped to %+v", p.Pos)
			}
		}
	}
}
