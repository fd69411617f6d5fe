package parameter

// Arena
const (
	ArenaWidth  = 960.0
	ArenaHeight = 640.0
)

// Placement
const (
	// PlacementMaxAttempts bounds rejection sampling before the deterministic fallback
	PlacementMaxAttempts = 1000
)

// Steering
const (
	// SeekExitFactor widens the exit threshold over the detection radius (hysteresis)
	SeekExitFactor = 1.25

	// WanderJitterChance is the per-tick probability of a heading impulse
	WanderJitterChance = 0.03

	// WanderJitterStrength is the impulse magnitude relative to the unit heading
	WanderJitterStrength = 0.75
)
