package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
)

// Snapshot is the state published after a tick; readers own their copy
type Snapshot struct {
	Tick  uint64
	Clock time.Duration
	// Delta is the clamped frame delta used by this tick
	Delta     time.Duration
	Phase     GamePhase
	State     core.LevelState
	SessionID uuid.UUID
	Outcome   Outcome
	Theme     parameter.Theme
}
