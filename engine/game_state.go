package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/diamond-run/core"
)

// GamePhase is the top-level session state
type GamePhase uint8

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhaseVictory
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// validTransitions is the complete transition table; Playing -> Playing is a level change
var validTransitions = map[GamePhase][]GamePhase{
	PhaseMenu:    {PhasePlaying},
	PhasePlaying: {PhasePlaying, PhaseVictory},
	PhaseVictory: {PhaseMenu},
}

// CanTransition reports whether from -> to exists in the phase table
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// Session is an immutable view of the game; a new value replaces the old one on every commit
type Session struct {
	Phase GamePhase
	// State is meaningful only while Playing; other phases hold no entities
	State core.LevelState
	// ID identifies the current run from start command to victory
	ID uuid.UUID
}

// Playing reports whether the session carries live entities
func (s Session) Playing() bool {
	return s.Phase == PhasePlaying
}

// RegressLevel is the fixed penalty for touching an enemy: one level down, floored at 1
func RegressLevel(level int) int {
	if level <= 1 {
		return 1
	}
	return level - 1
}
