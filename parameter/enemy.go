package parameter

// Enemy spawn
const (
	// EnemyBaseSpeed is the speed floor shared by every theme (units/sec)
	EnemyBaseSpeed = 90.0

	// EnemySpeedPerLevel is added once per level above the first
	EnemySpeedPerLevel = 12.0

	// EnemySpeedJitter bounds the per-enemy random offset to [-J, J)
	EnemySpeedJitter = 8.0

	// EnemySizePerLevel scales theme size by 1 + N*(level-1)
	EnemySizePerLevel = 0.05

	// EnemySpawnPadding insets the arena for enemy sampling
	EnemySpawnPadding = 80.0

	// MaxEnemySize caps a theme size; at the last level it still fits the enemy spawn area
	MaxEnemySize = 120.0
)

// MinEnemySpeed is the slowest speed a theme can roll, at level 1 with the lowest jitter
func MinEnemySpeed(theme Theme) float64 {
	return EnemyBaseSpeed + theme.SpeedBonus - EnemySpeedJitter
}

// Detection
const (
	// DetectRadiusBase and DetectRadiusPerLevel give radius = base + level*perLevel
	DetectRadiusBase     = 120.0
	DetectRadiusPerLevel = 30.0
)

// Seek eligibility adjustment per kind category, added to the theme SeekChance
const (
	SeekChanceChaserBonus    = 0.25
	SeekChanceDrifterPenalty = -0.15
)
