package engine

import (
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/physics"
)

// resolveCollisions applies the level consequences of overlaps after integration
// Enemy contact takes priority; the goal is only tested when no enemy was hit
func resolveCollisions(state core.LevelState, gen LevelGenerator) (core.LevelState, Outcome) {
	if idx := physics.FirstEnemyHit(state.Player, state.Enemies); idx >= 0 {
		target := RegressLevel(state.Level)
		return gen.Generate(target), Outcome{
			Kind:       OutcomeLevelTransition,
			Level:      target,
			Cause:      CauseEnemy,
			EnemyIndex: idx,
		}
	}

	if physics.TouchesGoal(state.Player, state.Goal) {
		target := state.Level + 1
		if target > parameter.MaxLevel {
			return state, Outcome{
				Kind:       OutcomeVictory,
				Level:      state.Level,
				Cause:      CauseGoal,
				EnemyIndex: -1,
			}
		}
		// New layout within the same tick, no frame shows the old level at the new number
		return gen.Generate(target), Outcome{
			Kind:       OutcomeLevelTransition,
			Level:      target,
			Cause:      CauseGoal,
			EnemyIndex: -1,
		}
	}

	return state, Outcome{Kind: OutcomeContinue, Level: state.Level, EnemyIndex: -1}
}
