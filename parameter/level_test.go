package parameter

import (
	"testing"

	"github.com/lixenwraith/diamond-run/core"
)

func TestThemeTableCoversTaxonomy(t *testing.T) {
	if len(Themes) != MaxLevel {
		t.Fatalf("len(Themes) = %d, want %d", len(Themes), MaxLevel)
	}
	seen := make(map[core.EnemyKind]bool)
	for i, th := range Themes {
		if th.Size <= 0 || th.DetectScale <= 0 {
			t.Errorf("theme %d (%s) has non-positive size or detect scale", i, th.Name)
		}
		if th.SeekChance < 0 || th.SeekChance > 1 {
			t.Errorf("theme %d (%s) seek chance %v out of [0,1]", i, th.Name, th.SeekChance)
		}
		seen[th.Kind] = true
	}
	if len(seen) != int(core.KindCount) {
		t.Errorf("themes use %d distinct kinds, want %d", len(seen), core.KindCount)
	}
}

func TestLevelLookupClamps(t *testing.T) {
	tests := []struct {
		level     int
		wantCount int
		wantName  string
	}{
		{0, 3, "Meadow"},
		{1, 3, "Meadow"},
		{2, 4, "Caverns"},
		{5, 7, "Abyss"},
		{9, 7, "Abyss"},
	}
	for _, tc := range tests {
		if got := EnemyCountFor(EnemyCountByLevel, tc.level); got != tc.wantCount {
			t.Errorf("EnemyCountFor(%d) = %d, want %d", tc.level, got, tc.wantCount)
		}
		if got := ThemeFor(Themes, tc.level).Name; got != tc.wantName {
			t.Errorf("ThemeFor(%d) = %s, want %s", tc.level, got, tc.wantName)
		}
	}
}

func TestHardestThemeReducesDetection(t *testing.T) {
	last := Themes[len(Themes)-1]
	if last.DetectScale >= 1 {
		t.Errorf("hardest theme detect scale = %v, want < 1", last.DetectScale)
	}
}

func TestEnemyCountForCaps(t *testing.T) {
	table := []int{-4, 1_000_000_000}
	if got := EnemyCountFor(table, 1); got != 0 {
		t.Errorf("negative entry = %d, want 0", got)
	}
	if got := EnemyCountFor(table, 2); got != MaxEnemyCount {
		t.Errorf("huge entry = %d, want %d", got, MaxEnemyCount)
	}
}

func TestThemeLimits(t *testing.T) {
	for _, th := range Themes {
		if v := MinEnemySpeed(th); v <= 0 {
			t.Errorf("%s minimum speed %v, want > 0", th.Name, v)
		}
		if th.Size > MaxEnemySize {
			t.Errorf("%s size %v above cap %v", th.Name, th.Size, MaxEnemySize)
		}
	}
	grown := MaxEnemySize * (1 + EnemySizePerLevel*float64(MaxLevel-1))
	if grown >= ArenaHeight-2*EnemySpawnPadding || grown >= ArenaWidth-2*EnemySpawnPadding {
		t.Errorf("capped size grows to %v, larger than the enemy spawn area", grown)
	}
}
