package engine

import (
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
	"github.com/lixenwraith/diamond-run/vmath"
)

// fallbackCounter is implemented by generators that report placement fallbacks
type fallbackCounter interface {
	LastFallbacks() int
}

// MachineConfig wires a Machine to its collaborators; zero fields get defaults
type MachineConfig struct {
	Generator LevelGenerator
	// Themes is the table used to label snapshots; must match the generator's table
	Themes []parameter.Theme
	// SteerSeed seeds the steering stream, kept apart from the generator stream
	SteerSeed uint64
	Cues      core.CueSink
	Metrics   *status.GameMetrics
}

// Machine owns the session and applies phase transitions
// Not safe for concurrent use; every call happens on the tick goroutine
type Machine struct {
	gen     LevelGenerator
	themes  []parameter.Theme
	rng     *vmath.FastRand
	cues    core.CueSink
	metrics *status.GameMetrics

	session Session
}

// NewMachine creates a machine in the Menu phase
func NewMachine(cfg MachineConfig) *Machine {
	if cfg.Themes == nil {
		cfg.Themes = parameter.Themes
	}
	if cfg.Cues == nil {
		cfg.Cues = core.NopCueSink{}
	}
	if cfg.Metrics == nil {
		cfg.Metrics = status.NewGameMetrics(status.NewRegistry())
	}
	m := &Machine{
		gen:     cfg.Generator,
		themes:  cfg.Themes,
		rng:     vmath.NewFastRand(cfg.SteerSeed),
		cues:    cfg.Cues,
		metrics: cfg.Metrics,
		session: Session{Phase: PhaseMenu},
	}
	m.metrics.Phase.Store(PhaseMenu.String())
	return m
}

// Session returns the current session value
func (m *Machine) Session() Session {
	return m.session
}

// Theme returns the theme of the current level, the first theme outside Playing
func (m *Machine) Theme() parameter.Theme {
	level := 1
	if m.session.Playing() {
		level = m.session.State.Level
	}
	return parameter.ThemeFor(m.themes, level)
}

// Start begins a new session at level 1; ignored unless in Menu
func (m *Machine) Start() bool {
	if !m.transition(PhasePlaying) {
		return false
	}
	m.session.ID = uuid.New()
	m.session.State = m.generate(1)
	m.cues.Cue(core.CueStart)
	log.Printf("[PHASE] session %s started", m.session.ID)
	return true
}

// Acknowledge returns from Victory to Menu; ignored in any other phase
func (m *Machine) Acknowledge() bool {
	if !m.transition(PhaseMenu) {
		return false
	}
	log.Printf("[PHASE] session %s acknowledged", m.session.ID)
	m.session.State = core.LevelState{}
	return true
}

// Step advances the session by dt seconds using one input sample
// Confirm doubles as the start command in Menu and the acknowledge command in Victory
func (m *Machine) Step(dt float64, in core.InputSample) Outcome {
	switch m.session.Phase {
	case PhaseMenu:
		if in.Confirm {
			m.Start()
		}
		return Outcome{Kind: OutcomeNone, Level: m.session.State.Level, EnemyIndex: -1}
	case PhaseVictory:
		if in.Confirm {
			m.Acknowledge()
		}
		return Outcome{Kind: OutcomeNone, EnemyIndex: -1}
	}

	next, out := Update(m.session.State, dt, in, m, m.rng)
	m.session.State = next
	m.metrics.ModeSwitches.Add(int64(out.Switches))
	m.metrics.Bounces.Add(int64(out.Bounces))

	switch out.Kind {
	case OutcomeLevelTransition:
		m.transition(PhasePlaying)
		if out.Cause == CauseEnemy {
			m.metrics.Hits.Add(1)
			m.cues.Cue(core.CueHit)
			log.Printf("[LEVEL] hit by enemy %d, regress to %d", out.EnemyIndex, out.Level)
		} else {
			m.metrics.LevelsCleared.Add(1)
			m.cues.Cue(core.CueDiamond)
			m.cues.Cue(core.CueLevelUp)
			log.Printf("[LEVEL] goal reached, advance to %d", out.Level)
		}
	case OutcomeVictory:
		m.transition(PhaseVictory)
		// Only the cleared level number outlives Playing
		m.session.State = core.LevelState{Level: out.Level}
		m.metrics.Enemies.Store(0)
		m.metrics.LevelsCleared.Add(1)
		m.metrics.Victories.Add(1)
		m.cues.Cue(core.CueDiamond)
		m.cues.Cue(core.CueVictory)
		log.Printf("[PHASE] session %s victory", m.session.ID)
	}
	m.publishLevel()
	return out
}

// Generate satisfies LevelGenerator so Update can request layouts through the machine
func (m *Machine) Generate(level int) core.LevelState {
	return m.generate(level)
}

func (m *Machine) generate(level int) core.LevelState {
	state := m.gen.Generate(level)
	if fc, ok := m.gen.(fallbackCounter); ok {
		if n := fc.LastFallbacks(); n > 0 {
			m.metrics.Fallbacks.Add(int64(n))
			log.Printf("[LEVEL] level %d placed %d entities by fallback", level, n)
		}
	}
	m.metrics.Level.Store(int64(state.Level))
	m.metrics.Theme.Store(parameter.ThemeFor(m.themes, state.Level).Name)
	m.metrics.Enemies.Store(int64(len(state.Enemies)))
	return state
}

func (m *Machine) publishLevel() {
	seeking := 0
	for i := range m.session.State.Enemies {
		if m.session.State.Enemies[i].Mode == core.ModeSeek {
			seeking++
		}
	}
	m.metrics.Seeking.Store(int64(seeking))
}

// transition applies from -> to when the table allows it
func (m *Machine) transition(to GamePhase) bool {
	from := m.session.Phase
	if !CanTransition(from, to) {
		return false
	}
	m.session.Phase = to
	m.metrics.Phase.Store(to.String())
	if from != to {
		log.Printf("[PHASE] %s -> %s", from, to)
	}
	return true
}
