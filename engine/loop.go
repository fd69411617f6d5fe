package engine

import (
	"time"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
)

// InputSource yields the instantaneous control state once per tick
type InputSource interface {
	Sample(now time.Time) core.InputSample
}

// Loop sequences one tick: clamp delta, sample input, step the machine, publish
type Loop struct {
	machine *Machine
	input   InputSource
	time    TimeSource
	clock   *AnimationClock
	metrics *status.GameMetrics

	tick     uint64
	snapshot Snapshot
}

// NewLoop wires a loop; metrics may be nil
func NewLoop(machine *Machine, input InputSource, ts TimeSource, metrics *status.GameMetrics) *Loop {
	if ts == nil {
		ts = NewSystemTime()
	}
	if metrics == nil {
		metrics = machine.metrics
	}
	l := &Loop{
		machine: machine,
		input:   input,
		time:    ts,
		clock:   NewAnimationClock(parameter.MaxFrameDelta),
		metrics: metrics,
	}
	l.publish(Outcome{Kind: OutcomeNone, EnemyIndex: -1}, 0)
	return l
}

// Tick runs one simulation step for the given raw elapsed wall time
func (l *Loop) Tick(elapsed time.Duration) Snapshot {
	dt := l.clock.Advance(elapsed)
	in := l.input.Sample(l.time.Now())

	out := l.machine.Step(dt.Seconds(), in)

	l.tick++
	l.metrics.Ticks.Store(int64(l.tick))
	l.metrics.FrameDelta.Set(float64(dt) / float64(time.Millisecond))
	l.publish(out, dt)
	return l.snapshot
}

// Snapshot returns the most recently published state
func (l *Loop) Snapshot() Snapshot {
	return l.snapshot
}

// Machine exposes the session owner for direct commands from the UI
func (l *Loop) Machine() *Machine {
	return l.machine
}

func (l *Loop) publish(out Outcome, dt time.Duration) {
	session := l.machine.Session()
	l.snapshot = Snapshot{
		Tick:      l.tick,
		Clock:     l.clock.Elapsed(),
		Delta:     dt,
		Phase:     session.Phase,
		State:     session.State.Clone(),
		SessionID: session.ID,
		Outcome:   out,
		Theme:     l.machine.Theme(),
	}
}
