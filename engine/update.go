package engine

import (
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/physics"
	"github.com/lixenwraith/diamond-run/vmath"
)

// LevelGenerator builds a fresh layout for a level number and never fails
type LevelGenerator interface {
	Generate(level int) core.LevelState
}

// OutcomeKind classifies the result of one tick
type OutcomeKind uint8

const (
	// OutcomeNone: no simulation ran (phase other than Playing)
	OutcomeNone OutcomeKind = iota
	// OutcomeContinue: same level, entities moved
	OutcomeContinue
	// OutcomeLevelTransition: a new layout replaced the level (advance or regress)
	OutcomeLevelTransition
	// OutcomeVictory: the final goal was reached, nothing was generated
	OutcomeVictory
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeContinue:
		return "continue"
	case OutcomeLevelTransition:
		return "transition"
	case OutcomeVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// TransitionCause explains a level transition
type TransitionCause uint8

const (
	CauseNone TransitionCause = iota
	CauseGoal
	CauseEnemy
)

func (c TransitionCause) String() string {
	switch c {
	case CauseGoal:
		return "goal"
	case CauseEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Outcome describes what a tick did
type Outcome struct {
	Kind OutcomeKind
	// Level is the level in effect after the tick (the new level on a transition)
	Level int
	Cause TransitionCause
	// EnemyIndex is the colliding enemy for CauseEnemy, else -1
	EnemyIndex int
	// Switches and Bounces count steering mode changes and wall reflections this tick
	Switches int
	Bounces  int
}

// Update derives the next level state from state, dt seconds and the sampled input
// The input state is never mutated; gen and rng supply the only side effects
func Update(state core.LevelState, dt float64, in core.InputSample, gen LevelGenerator, rng *vmath.FastRand) (core.LevelState, Outcome) {
	next := state.Clone()
	arena := vmath.Rect{W: parameter.ArenaWidth, H: parameter.ArenaHeight}

	switches := physics.Steer(next.Enemies, next.Player.Center(), rng)

	physics.MovePlayer(&next.Player, in, parameter.PlayerMaxSpeed, dt, arena)
	bounces := physics.MoveEnemies(next.Enemies, dt, arena)

	next, out := resolveCollisions(next, gen)
	out.Switches = switches
	out.Bounces = bounces
	return next, out
}
