package parameter

import "github.com/lixenwraith/diamond-run/core"

// MaxLevel is the final level; reaching its goal ends the session in victory
const MaxLevel = 5

// MaxEnemyCount caps any enemy count table entry
const MaxEnemyCount = 32

// EnemyCountByLevel is indexed by level-1 and clamped at the last entry
var EnemyCountByLevel = []int{3, 4, 5, 6, 7}

// Theme bundles the per-level gameplay and visual parameters
type Theme struct {
	Name       string
	Kind       core.EnemyKind
	Color      core.RGB
	Background core.RGB
	// SpeedBonus is added to EnemyBaseSpeed (units/sec)
	SpeedBonus float64
	// Size is the enemy box edge before level scaling
	Size float64
	// SeekChance is the base seek-eligibility probability before the kind category adjustment
	SeekChance float64
	// DetectScale multiplies the detection radius (hardest theme is reduced)
	DetectScale float64
}

// Themes is indexed by level-1 and clamped at the last entry
var Themes = []Theme{
	{
		Name: "Meadow", Kind: core.KindSlime,
		Color: core.RGB{R: 108, G: 194, B: 74}, Background: core.RGB{R: 14, G: 32, B: 18},
		SpeedBonus: 0, Size: 30, SeekChance: 0.30, DetectScale: 1.0,
	},
	{
		Name: "Caverns", Kind: core.KindBat,
		Color: core.RGB{R: 160, G: 110, B: 220}, Background: core.RGB{R: 20, G: 16, B: 34},
		SpeedBonus: 15, Size: 24, SeekChance: 0.35, DetectScale: 1.0,
	},
	{
		Name: "Crypt", Kind: core.KindGhost,
		Color: core.RGB{R: 170, G: 210, B: 240}, Background: core.RGB{R: 18, G: 22, B: 30},
		SpeedBonus: 25, Size: 32, SeekChance: 0.45, DetectScale: 1.0,
	},
	{
		Name: "Wildwood", Kind: core.KindHound,
		Color: core.RGB{R: 214, G: 138, B: 64}, Background: core.RGB{R: 30, G: 22, B: 12},
		SpeedBonus: 40, Size: 30, SeekChance: 0.50, DetectScale: 1.0,
	},
	{
		Name: "Abyss", Kind: core.KindWraith,
		Color: core.RGB{R: 220, G: 48, B: 64}, Background: core.RGB{R: 24, G: 6, B: 10},
		SpeedBonus: 55, Size: 34, SeekChance: 0.55, DetectScale: 0.8,
	},
}

// ThemeFor returns the theme of a level from table, clamped to the table range
func ThemeFor(table []Theme, level int) Theme {
	return table[clampIndex(level, len(table))]
}

// EnemyCountFor returns the enemy count of a level from table, clamped to the table range and to [0, MaxEnemyCount]
func EnemyCountFor(table []int, level int) int {
	return max(0, min(table[clampIndex(level, len(table))], MaxEnemyCount))
}

// clampIndex maps a 1-based level onto [0, n-1]
func clampIndex(level, n int) int {
	i := level - 1
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
