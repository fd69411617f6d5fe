package core

// Cue is a fire-and-forget audio notification emitted by the simulation
type Cue int

const (
	CueStart   Cue = iota // New session began
	CueDiamond            // Player touched the goal
	CueLevelUp            // Next level generated
	CueHit                // Player touched an enemy
	CueVictory            // Final goal reached
	CueCount
)

var cueNames = [CueCount]string{"start", "diamond", "levelUp", "hit", "victory"}

func (c Cue) String() string {
	if c < 0 || c >= CueCount {
		return "unknown"
	}
	return cueNames[c]
}

// CueSink receives cues; implementations must never block the caller
type CueSink interface {
	Cue(c Cue)
}

// NopCueSink discards every cue
type NopCueSink struct{}

func (NopCueSink) Cue(Cue) {}

// CueRecorder keeps cues in order of arrival, used by headless runs and tests
type CueRecorder struct {
	Cues []Cue
}

func (r *CueRecorder) Cue(c Cue) {
	r.Cues = append(r.Cues, c)
}
