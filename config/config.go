// Package config loads user settings: a YAML file, then environment overrides.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/diamond-run/audio"
	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/input"
	"github.com/lixenwraith/diamond-run/level"
	"github.com/lixenwraith/diamond-run/parameter"
)

// Sentinel errors, wrapped with context by Load and Validate
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidTheme  = errors.New("invalid theme")
)

// EnvSeed overrides the level seed
const EnvSeed = "DIAMOND_RUN_SEED"

// Color modes accepted by the color setting
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// ThemeSpec is the file form of a theme; colors are "#rrggbb", kind is an enemy kind name
type ThemeSpec struct {
	Name        string  `yaml:"name"`
	Kind        string  `yaml:"kind"`
	Color       string  `yaml:"color"`
	Background  string  `yaml:"background"`
	SpeedBonus  float64 `yaml:"speed_bonus"`
	Size        float64 `yaml:"size"`
	SeekChance  float64 `yaml:"seek_chance"`
	DetectScale float64 `yaml:"detect_scale"`
}

// Settings is the complete user configuration
type Settings struct {
	// Seed drives level generation; zero picks a time-based seed at startup
	Seed  uint64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`
	Color string `yaml:"color"`

	Audio audio.AudioConfig `yaml:"audio"`

	// Keymap binds key names to action names on top of the default bindings
	Keymap map[string]string `yaml:"keymap"`

	// Themes and EnemyCounts replace the built-in level tables when non-empty
	Themes      []ThemeSpec `yaml:"themes"`
	EnemyCounts []int       `yaml:"enemy_counts"`
}

// Default returns the built-in settings
func Default() *Settings {
	return &Settings{
		Color: ColorAuto,
		Audio: *audio.DefaultAudioConfig(),
	}
}

// Load reads path (skipped when empty), applies environment overrides and validates
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		log.Printf("[CONFIG] loaded %s", path)
	}

	if err := s.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyEnv overrides settings from environment variables
func (s *Settings) ApplyEnv() error {
	if seed := os.Getenv(EnvSeed); seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, seed, err)
		}
		s.Seed = v
	}
	audio.ApplyEnv(&s.Audio)
	return nil
}

// Validate checks ranges and that every table entry resolves
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Color) {
	case ColorAuto, ColorTrueColor, Color256, "":
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidConfig, s.Color)
	}
	if s.Audio.MasterVolume < 0 || s.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume %v outside [0,1]", ErrInvalidConfig, s.Audio.MasterVolume)
	}
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, s.Audio.SampleRate)
	}
	for i, n := range s.EnemyCounts {
		if n < 0 || n > parameter.MaxEnemyCount {
			return fmt.Errorf("%w: enemy_counts[%d] = %d outside [0,%d]", ErrInvalidConfig, i, n, parameter.MaxEnemyCount)
		}
	}
	if _, err := s.Tables(); err != nil {
		return err
	}
	if _, err := s.KeyTable(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Tables resolves the level tables for the generator
func (s *Settings) Tables() (level.Tables, error) {
	t := level.DefaultTables()
	if len(s.EnemyCounts) > 0 {
		t.EnemyCounts = s.EnemyCounts
	}
	if len(s.Themes) == 0 {
		return t, nil
	}
	themes := make([]parameter.Theme, 0, len(s.Themes))
	for i, spec := range s.Themes {
		th, err := spec.Theme()
		if err != nil {
			return level.Tables{}, fmt.Errorf("themes[%d]: %w", i, err)
		}
		themes = append(themes, th)
	}
	t.Themes = themes
	return t, nil
}

// KeyTable returns the default bindings with the keymap applied
func (s *Settings) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(s.Keymap) == 0 {
		return kt, nil
	}
	override, err := input.LoadKeyConfig(s.Keymap)
	if err != nil {
		return nil, err
	}
	kt.Merge(override)
	return kt, nil
}

// Theme converts the file form into a parameter.Theme
func (ts ThemeSpec) Theme() (parameter.Theme, error) {
	if ts.Name == "" {
		return parameter.Theme{}, fmt.Errorf("%w: missing name", ErrInvalidTheme)
	}
	kind, ok := core.ParseEnemyKind(strings.ToLower(ts.Kind))
	if !ok {
		return parameter.Theme{}, fmt.Errorf("%w: %s: unknown enemy kind %q", ErrInvalidTheme, ts.Name, ts.Kind)
	}
	fg, err := core.ParseHexRGB(ts.Color)
	if err != nil {
		return parameter.Theme{}, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, ts.Name, err)
	}
	bg, err := core.ParseHexRGB(ts.Background)
	if err != nil {
		return parameter.Theme{}, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, ts.Name, err)
	}
	if ts.Size <= 0 || ts.Size > parameter.MaxEnemySize {
		return parameter.Theme{}, fmt.Errorf("%w: %s: size %v outside (0,%v]", ErrInvalidTheme, ts.Name, ts.Size, parameter.MaxEnemySize)
	}
	if ts.SeekChance < 0 || ts.SeekChance > 1 {
		return parameter.Theme{}, fmt.Errorf("%w: %s: seek_chance %v outside [0,1]", ErrInvalidTheme, ts.Name, ts.SeekChance)
	}
	scale := ts.DetectScale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 {
		return parameter.Theme{}, fmt.Errorf("%w: %s: detect_scale %v", ErrInvalidTheme, ts.Name, scale)
	}
	th := parameter.Theme{
		Name:        ts.Name,
		Kind:        kind,
		Color:       fg,
		Background:  bg,
		SpeedBonus:  ts.SpeedBonus,
		Size:        ts.Size,
		SeekChance:  ts.SeekChance,
		DetectScale: scale,
	}
	if v := parameter.MinEnemySpeed(th); v <= 0 {
		return parameter.Theme{}, fmt.Errorf("%w: %s: speed_bonus %v leaves minimum speed %v", ErrInvalidTheme, ts.Name, ts.SpeedBonus, v)
	}
	return th, nil
}
