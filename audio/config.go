package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/diamond-run/vmath"
)

// Environment variables read by ApplyEnv
const (
	EnvAudioEnabled = "DIAMOND_RUN_AUDIO_ENABLED"
	EnvMasterVolume = "DIAMOND_RUN_MASTER_VOLUME"
	EnvSFXVolumes   = "DIAMOND_RUN_SFX_VOLUMES"
	EnvSampleRate   = "DIAMOND_RUN_SAMPLE_RATE"
)

// LoadAudioConfig returns the defaults with environment overrides applied
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from environment variables; malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment, 0.0-1.0 internally
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = vmath.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Per-cue volumes as a JSON object keyed by cue name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for name, v := range volumes {
				cfg.EffectVolumes[name] = vmath.Clamp(v, 0, 1)
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}
