package audio

import (
	"errors"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
)

// AudioConfig holds playback settings; yaml tags allow embedding in the settings file
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
	// EffectVolumes scales each cue, keyed by cue name (start, diamond, levelUp, hit, victory)
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[string]float64{
			core.CueStart.String():   0.7,
			core.CueDiamond.String(): 0.8,
			core.CueLevelUp.String(): 0.6,
			core.CueHit.String():     0.9,
			core.CueVictory.String(): 0.7,
		},
	}
}

// EffectVolume returns the final gain of a cue, master volume applied
func (c *AudioConfig) EffectVolume(cue core.Cue) float64 {
	v, ok := c.EffectVolumes[cue.String()]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrDisabled       = errors.New("audio disabled by configuration")
)
