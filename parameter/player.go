package parameter

// Player avatar
const (
	// PlayerSize is the player box edge (units)
	PlayerSize = 28.0

	// PlayerMaxSpeed is the displacement rate under full intent (units/sec)
	PlayerMaxSpeed = 260.0

	// PlayerStartX and PlayerStartY are the fixed start corner
	PlayerStartX = 40.0
	PlayerStartY = 40.0
)

// Goal
const (
	// GoalSize is the goal box edge (units)
	GoalSize = 32.0

	// GoalSpawnPadding insets the arena for goal sampling
	GoalSpawnPadding = 120.0
)
