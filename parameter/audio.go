package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Start Sound: rising two-note chime
const (
	StartSoundNoteDuration = 90 * time.Millisecond
	StartSoundLowFreq      = 523.25 // C5
	StartSoundHighFreq     = 783.99 // G5
	StartSoundAttack       = 5 * time.Millisecond
	StartSoundRelease      = 60 * time.Millisecond
)

// Diamond Sound: bright bell
const (
	DiamondSoundDuration = 220 * time.Millisecond
	DiamondSoundFreq     = 1318.5 // E6
	DiamondSoundAttack   = 3 * time.Millisecond
	DiamondSoundRelease  = 180 * time.Millisecond
)

// Level Up Sound: three-step arpeggio
const (
	LevelUpSoundStep    = 70 * time.Millisecond
	LevelUpSoundAttack  = 4 * time.Millisecond
	LevelUpSoundRelease = 40 * time.Millisecond
)

// LevelUpSoundFreqs are the arpeggio notes in order
var LevelUpSoundFreqs = []float64{659.25, 830.61, 987.77}

// Hit Sound: low square buzz
const (
	HitSoundDuration = 160 * time.Millisecond
	HitSoundFreq     = 110.0
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 80 * time.Millisecond
)

// Victory Sound: sustained major chord
const (
	VictorySoundDuration = 900 * time.Millisecond
	VictorySoundAttack   = 20 * time.Millisecond
	VictorySoundRelease  = 500 * time.Millisecond
)

// VictorySoundFreqs are mixed together
var VictorySoundFreqs = []float64{523.25, 659.25, 783.99}
