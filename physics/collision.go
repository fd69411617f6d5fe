package physics

import (
	"github.com/lixenwraith/diamond-run/core"
)

// FirstEnemyHit returns the index of the first enemy, in iteration order, whose box
// overlaps the player, or -1
func FirstEnemyHit(p core.Player, enemies []core.Enemy) int {
	box := p.Box()
	for i := range enemies {
		if box.Intersects(enemies[i].Box()) {
			return i
		}
	}
	return -1
}

// TouchesGoal tests the player box against the goal box; the goal's diamond shape is ignored
func TouchesGoal(p core.Player, g core.Goal) bool {
	return p.Box().Intersects(g.Box())
}
