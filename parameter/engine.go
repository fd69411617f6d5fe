package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the tick source period (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps elapsed time per tick after stalls
	MaxFrameDelta = 33 * time.Millisecond
)

// Input
const (
	// KeyHoldTimeout keeps a direction active after its last key repeat
	// Terminals report no key release, so a held key is inferred from auto-repeat
	KeyHoldTimeout = 150 * time.Millisecond
)

// Audio cue queue
const (
	// CueQueueSize bounds pending cues; overflow is dropped, never blocks the tick
	CueQueueSize = 16
)
