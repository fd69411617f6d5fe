package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
)

// CreateStartSound generates a rising two-note chime
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.StartSoundNoteDuration

	low := tone(parameter.StartSoundLowFreq, WaveSine, d, parameter.StartSoundAttack, parameter.StartSoundRelease, rate)
	high := tone(parameter.StartSoundHighFreq, WaveSine, d, parameter.StartSoundAttack, parameter.StartSoundRelease, rate)

	return newVolume(beep.Seq(low, high), cfg.EffectVolume(core.CueStart))
}

// CreateDiamondSound generates a bell with an octave overtone
func CreateDiamondSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.DiamondSoundDuration

	fund := tone(parameter.DiamondSoundFreq, WaveSine, d, parameter.DiamondSoundAttack, parameter.DiamondSoundRelease, rate)
	over := tone(parameter.DiamondSoundFreq*2, WaveSine, d, parameter.DiamondSoundAttack, parameter.DiamondSoundRelease/2, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.EffectVolume(core.CueDiamond))
}

// CreateLevelUpSound generates a short square arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.LevelUpSoundStep

	notes := make([]beep.Streamer, 0, len(parameter.LevelUpSoundFreqs))
	for _, f := range parameter.LevelUpSoundFreqs {
		notes = append(notes, tone(f, WaveSquare, d, parameter.LevelUpSoundAttack, parameter.LevelUpSoundRelease, rate))
	}
	// Square waves are loud, trimmed before the cue gain
	return newVolume(newVolume(beep.Seq(notes...), 0.4), cfg.EffectVolume(core.CueLevelUp))
}

// CreateHitSound generates a low buzz with a noise crunch
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.HitSoundDuration

	buzz := tone(parameter.HitSoundFreq, WaveSaw, d, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	crunch := tone(0, WaveNoise, d/2, parameter.HitSoundAttack, d/4, rate)

	mixed := beep.Mix(newVolume(buzz, 0.7), newVolume(crunch, 0.25))
	return newVolume(mixed, cfg.EffectVolume(core.CueHit))
}

// CreateVictorySound generates a sustained major chord
func CreateVictorySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.VictorySoundDuration

	voices := make([]beep.Streamer, 0, len(parameter.VictorySoundFreqs))
	gain := 1.0 / float64(len(parameter.VictorySoundFreqs))
	for _, f := range parameter.VictorySoundFreqs {
		voices = append(voices, newVolume(tone(f, WaveSine, d, parameter.VictorySoundAttack, parameter.VictorySoundRelease, rate), gain))
	}
	return newVolume(beep.Mix(voices...), cfg.EffectVolume(core.CueVictory))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown cues
func GetSoundEffect(cue core.Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case core.CueStart:
		return CreateStartSound(cfg)
	case core.CueDiamond:
		return CreateDiamondSound(cfg)
	case core.CueLevelUp:
		return CreateLevelUpSound(cfg)
	case core.CueHit:
		return CreateHitSound(cfg)
	case core.CueVictory:
		return CreateVictorySound(cfg)
	default:
		return nil
	}
}
