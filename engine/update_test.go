package engine

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/level"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

// countingGenerator records every Generate call and returns an empty level
type countingGenerator struct {
	calls []int
}

func (g *countingGenerator) Generate(lvl int) core.LevelState {
	g.calls = append(g.calls, lvl)
	return core.LevelState{
		Level:  lvl,
		Player: core.Player{Pos: vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}, Size: parameter.PlayerSize},
		Goal:   core.Goal{Pos: vmath.Vec2{X: 800, Y: 500}, Size: parameter.GoalSize},
	}
}

// goalAhead builds a level where the goal sits 5 units right of the start corner
func goalAhead(lvl int, enemies ...core.Enemy) core.LevelState {
	start := vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}
	return core.LevelState{
		Level:   lvl,
		Player:  core.Player{Pos: start, Size: parameter.PlayerSize},
		Goal:    core.Goal{Pos: vmath.Vec2{X: start.X + parameter.PlayerSize + 5, Y: start.Y}, Size: parameter.GoalSize},
		Enemies: enemies,
	}
}

func farEnemy() core.Enemy {
	return core.Enemy{
		Kinetic: core.Kinetic{Pos: vmath.Vec2{X: 700, Y: 450}, Vel: vmath.Vec2{X: 90}},
		Size:    30,
		Speed:   90,
	}
}

func TestUpdateGoalOnLevelOneAdvances(t *testing.T) {
	gen := level.NewGenerator(11)
	state := goalAhead(1, farEnemy())
	right := core.InputSample{Right: true}

	next, out := Update(state, 0.033, right, gen, vmath.NewFastRand(1))

	if out.Kind != OutcomeLevelTransition || out.Level != 2 || out.Cause != CauseGoal {
		t.Fatalf("outcome = %+v, want LevelTransition(2) by goal", out)
	}
	if next.Level != 2 {
		t.Errorf("next level = %d, want 2", next.Level)
	}
	if want := parameter.EnemyCountFor(parameter.EnemyCountByLevel, 2); len(next.Enemies) != want {
		t.Errorf("enemies = %d, want %d", len(next.Enemies), want)
	}
	if next.Player.Pos != (vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY}) {
		t.Errorf("player not reset to start corner: %+v", next.Player.Pos)
	}
}

func TestUpdateEnemyHitBeatsGoal(t *testing.T) {
	gen := &countingGenerator{}
	state := goalAhead(3)
	// Stationary enemy sitting on the player, goal overlapped on the same tick
	state.Enemies = []core.Enemy{{
		Kinetic: core.Kinetic{Pos: state.Player.Pos},
		Size:    20,
	}}

	next, out := Update(state, 0.033, core.InputSample{Right: true}, gen, vmath.NewFastRand(1))

	if out.Kind != OutcomeLevelTransition || out.Cause != CauseEnemy {
		t.Fatalf("outcome = %+v, want enemy transition", out)
	}
	if out.Level != 2 || next.Level != 2 {
		t.Errorf("level = %d/%d, want regression to 2", out.Level, next.Level)
	}
	if out.EnemyIndex != 0 {
		t.Errorf("EnemyIndex = %d, want 0", out.EnemyIndex)
	}
	if !reflect.DeepEqual(gen.calls, []int{2}) {
		t.Errorf("generator calls = %v, want [2]", gen.calls)
	}
}

func TestUpdateEnemyHitOnLevelOneStaysAtOne(t *testing.T) {
	gen := &countingGenerator{}
	state := goalAhead(1)
	state.Enemies = []core.Enemy{{Kinetic: core.Kinetic{Pos: state.Player.Pos}, Size: 20}}

	_, out := Update(state, 0.016, core.InputSample{}, gen, vmath.NewFastRand(1))
	if out.Level != 1 || out.Cause != CauseEnemy {
		t.Errorf("outcome = %+v, want regression floored at 1", out)
	}
}

func TestUpdateGoalOnFinalLevelIsVictory(t *testing.T) {
	gen := &countingGenerator{}
	state := goalAhead(parameter.MaxLevel, farEnemy())

	_, out := Update(state, 0.033, core.InputSample{Right: true}, gen, vmath.NewFastRand(1))

	if out.Kind != OutcomeVictory {
		t.Fatalf("outcome = %+v, want Victory", out)
	}
	if len(gen.calls) != 0 {
		t.Errorf("generator called %v on victory", gen.calls)
	}
}

func TestUpdateContinueDoesNotMutateInput(t *testing.T) {
	gen := &countingGenerator{}
	state := goalAhead(2, farEnemy())
	state.Goal.Pos = vmath.Vec2{X: 800, Y: 500}
	before := state.Clone()

	next, out := Update(state, 0.016, core.InputSample{Down: true}, gen, vmath.NewFastRand(1))

	if out.Kind != OutcomeContinue || out.Level != 2 {
		t.Fatalf("outcome = %+v, want Continue on level 2", out)
	}
	if !reflect.DeepEqual(state, before) {
		t.Error("input state mutated")
	}
	if next.Player.Pos.Y <= before.Player.Pos.Y {
		t.Errorf("player did not move down: %+v", next.Player.Pos)
	}
	if next.Enemies[0].Pos == before.Enemies[0].Pos {
		t.Error("enemy did not move")
	}
	if len(gen.calls) != 0 {
		t.Errorf("generator called on continue: %v", gen.calls)
	}
}

func TestUpdateIdlePlayerStaysPut(t *testing.T) {
	state := goalAhead(1)
	state.Goal.Pos = vmath.Vec2{X: 800, Y: 500}
	next, _ := Update(state, 0.016, core.InputSample{}, &countingGenerator{}, vmath.NewFastRand(1))
	if next.Player.Pos != state.Player.Pos {
		t.Errorf("idle player moved to %+v", next.Player.Pos)
	}
}
