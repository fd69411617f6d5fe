// Package level builds fresh entity layouts for a level number.
package level

import (
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/vmath"
)

// Tables holds the level-indexed configuration the generator reads
type Tables struct {
	Themes      []parameter.Theme
	EnemyCounts []int
}

// DefaultTables returns the built-in theme and enemy count tables
func DefaultTables() Tables {
	return Tables{
		Themes:      parameter.Themes,
		EnemyCounts: parameter.EnemyCountByLevel,
	}
}

// Generator produces level layouts; each level draws from a stream derived from the seed and the level number
// Not safe for concurrent use
type Generator struct {
	seed   uint64
	rng    *vmath.FastRand
	tables Tables
	arena  vmath.Rect

	// lastFallbacks counts placements that exhausted the attempt budget in the last Generate
	lastFallbacks int
}

// NewGenerator creates a generator; Generate(n) yields the same layout for a given seed whatever was generated before
func NewGenerator(seed uint64, tables ...Tables) *Generator {
	t := DefaultTables()
	if len(tables) > 0 {
		if len(tables[0].Themes) > 0 {
			t.Themes = tables[0].Themes
		}
		if len(tables[0].EnemyCounts) > 0 {
			t.EnemyCounts = tables[0].EnemyCounts
		}
	}
	return &Generator{
		seed:   seed,
		rng:    vmath.NewFastRand(seed),
		tables: t,
		arena:  vmath.Rect{W: parameter.ArenaWidth, H: parameter.ArenaHeight},
	}
}

// Arena returns the bounds every layout is generated into
func (g *Generator) Arena() vmath.Rect {
	return g.arena
}

// LastFallbacks reports how many placements in the most recent Generate used the fallback position
func (g *Generator) LastFallbacks() int {
	return g.lastFallbacks
}

// Generate builds the player, goal and enemy set for level; it never fails
func (g *Generator) Generate(level int) core.LevelState {
	if level < 1 {
		level = 1
	}
	g.rng = vmath.NewFastRand(levelSeed(g.seed, level))
	g.lastFallbacks = 0

	player := core.Player{
		Pos:  vmath.Vec2{X: parameter.PlayerStartX, Y: parameter.PlayerStartY},
		Size: parameter.PlayerSize,
	}
	placed := make([]vmath.Rect, 0, 2+parameter.EnemyCountFor(g.tables.EnemyCounts, level))
	placed = append(placed, player.Box())

	goalPos := g.place(parameter.GoalSpawnPadding, parameter.GoalSize, placed)
	goal := core.Goal{Pos: goalPos, Size: parameter.GoalSize}
	placed = append(placed, goal.Box())

	theme := parameter.ThemeFor(g.tables.Themes, level)
	count := parameter.EnemyCountFor(g.tables.EnemyCounts, level)
	enemies := make([]core.Enemy, 0, count)
	for i := 0; i < count; i++ {
		e := g.spawnEnemy(theme, level)
		e.Pos = g.place(parameter.EnemySpawnPadding, e.Size, placed)
		placed = append(placed, e.Box())
		enemies = append(enemies, e)
	}

	return core.LevelState{
		Level:   level,
		Player:  player,
		Goal:    goal,
		Enemies: enemies,
	}
}

// levelSeed spreads the level number across the seed bits with the 64-bit golden ratio
func levelSeed(seed uint64, level int) uint64 {
	return seed ^ uint64(level)*0x9e3779b97f4a7c15
}

// spawnEnemy rolls the fixed per-enemy attributes; position is assigned by the caller
func (g *Generator) spawnEnemy(theme parameter.Theme, level int) core.Enemy {
	lvl := float64(level - 1)

	speed := parameter.EnemyBaseSpeed +
		theme.SpeedBonus +
		parameter.EnemySpeedPerLevel*lvl +
		g.rng.Range(-parameter.EnemySpeedJitter, parameter.EnemySpeedJitter)

	heading := g.rng.UnitVector()

	return core.Enemy{
		Kinetic:      core.Kinetic{Vel: heading.Scale(speed)},
		Size:         theme.Size * (1 + parameter.EnemySizePerLevel*lvl),
		Kind:         theme.Kind,
		Color:        theme.Color,
		Speed:        speed,
		DetectRadius: DetectRadius(theme, level),
		SeekEligible: g.rng.Chance(SeekChance(theme)),
		Mode:         core.ModeWander,
	}
}

// DetectRadius returns the seek entry distance for a theme at level
func DetectRadius(theme parameter.Theme, level int) float64 {
	return (parameter.DetectRadiusBase + parameter.DetectRadiusPerLevel*float64(level)) * theme.DetectScale
}

// SeekChance returns the seek-eligibility probability of the theme's enemy kind
func SeekChance(theme parameter.Theme) float64 {
	p := theme.SeekChance
	switch theme.Kind.Category() {
	case core.CategoryChaser:
		p += parameter.SeekChanceChaserBonus
	case core.CategoryDrifter:
		p += parameter.SeekChanceDrifterPenalty
	}
	return vmath.Clamp(p, 0, 1)
}
