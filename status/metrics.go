package status

import "sync/atomic"

// Metric keys shared by engine, audio and render
const (
	KeyTicks         = "engine.ticks"
	KeyPhase         = "engine.phase"
	KeyLevel         = "engine.level"
	KeyTheme         = "engine.theme"
	KeyEnemies       = "engine.enemies"
	KeySeeking       = "engine.seeking"
	KeyModeSwitches  = "engine.mode_switches"
	KeyBounces       = "engine.bounces"
	KeyFallbacks     = "level.fallbacks"
	KeyLevelsCleared = "engine.levels_cleared"
	KeyHits          = "engine.hits"
	KeyVictories     = "engine.victories"
	KeyFrameDelta    = "engine.frame_dt_ms"
	KeyFPS           = "render.fps"
	KeyAudioEnabled  = "audio.enabled"
	KeyAudioMuted    = "audio.muted"
	KeyCuesPlayed    = "audio.cues_played"
	KeyCuesDropped   = "audio.cues_dropped"
)

// GameMetrics caches the metric pointers the simulation writes every tick
type GameMetrics struct {
	Ticks         *atomic.Int64
	Level         *atomic.Int64
	Enemies       *atomic.Int64
	Seeking       *atomic.Int64
	ModeSwitches  *atomic.Int64
	Bounces       *atomic.Int64
	Fallbacks     *atomic.Int64
	LevelsCleared *atomic.Int64
	Hits          *atomic.Int64
	Victories     *atomic.Int64
	FrameDelta    *AtomicFloat
	Phase         *AtomicString
	Theme         *AtomicString
}

// NewGameMetrics registers the simulation metrics in r
func NewGameMetrics(r *Registry) *GameMetrics {
	return &GameMetrics{
		Ticks:         r.Ints.Get(KeyTicks),
		Level:         r.Ints.Get(KeyLevel),
		Enemies:       r.Ints.Get(KeyEnemies),
		Seeking:       r.Ints.Get(KeySeeking),
		ModeSwitches:  r.Ints.Get(KeyModeSwitches),
		Bounces:       r.Ints.Get(KeyBounces),
		Fallbacks:     r.Ints.Get(KeyFallbacks),
		LevelsCleared: r.Ints.Get(KeyLevelsCleared),
		Hits:          r.Ints.Get(KeyHits),
		Victories:     r.Ints.Get(KeyVictories),
		FrameDelta:    r.Floats.Get(KeyFrameDelta),
		Phase:         r.Strings.Get(KeyPhase),
		Theme:         r.Strings.Get(KeyTheme),
	}
}
