package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/level"
)

// scriptedInput returns queued samples in order, then zero samples
type scriptedInput struct {
	samples []core.InputSample
	seen    []time.Time
}

func (s *scriptedInput) Sample(now time.Time) core.InputSample {
	s.seen = append(s.seen, now)
	if len(s.samples) == 0 {
		return core.InputSample{}
	}
	in := s.samples[0]
	s.samples = s.samples[1:]
	return in
}

func newTestLoop(samples ...core.InputSample) (*Loop, *scriptedInput, *ManualTime) {
	m, _, _ := newTestMachine(level.NewGenerator(9))
	in := &scriptedInput{samples: samples}
	clock := NewManualTime(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewLoop(m, in, clock, nil), in, clock
}

func TestLoopClampsDelta(t *testing.T) {
	l, _, _ := newTestLoop()

	snap := l.Tick(3 * time.Second)
	if snap.Delta != 33*time.Millisecond {
		t.Errorf("Delta = %v, want 33ms", snap.Delta)
	}
	snap = l.Tick(-time.Second)
	if snap.Delta != 0 {
		t.Errorf("negative Delta = %v, want 0", snap.Delta)
	}
	if snap.Clock != 33*time.Millisecond {
		t.Errorf("Clock = %v, want 33ms", snap.Clock)
	}
}

func TestLoopMenuTicksDoNoWork(t *testing.T) {
	l, in, _ := newTestLoop()

	for i := 0; i < 10; i++ {
		snap := l.Tick(16 * time.Millisecond)
		if snap.Phase != PhaseMenu || snap.Outcome.Kind != OutcomeNone {
			t.Fatalf("tick %d: phase %s outcome %+v", i, snap.Phase, snap.Outcome)
		}
		if len(snap.State.Enemies) != 0 {
			t.Fatal("menu snapshot carries entities")
		}
	}
	if len(in.seen) != 10 {
		t.Errorf("input sampled %d times, want once per tick", len(in.seen))
	}
}

func TestLoopStartAndPlay(t *testing.T) {
	l, _, clock := newTestLoop(core.InputSample{Confirm: true}, core.InputSample{Down: true})

	first := l.Tick(16 * time.Millisecond)
	if first.Phase != PhasePlaying || first.State.Level != 1 {
		t.Fatalf("after confirm: phase %s level %d", first.Phase, first.State.Level)
	}
	if first.Theme.Name != "Meadow" {
		t.Errorf("theme = %s", first.Theme.Name)
	}

	clock.Advance(16 * time.Millisecond)
	second := l.Tick(16 * time.Millisecond)
	if second.Tick <= first.Tick {
		t.Errorf("tick counter not monotonic: %d then %d", first.Tick, second.Tick)
	}
	if second.SessionID != first.SessionID {
		t.Error("session id changed mid-session")
	}
	if second.State.Player.Pos.Y <= first.State.Player.Pos.Y {
		t.Errorf("player did not move: %+v -> %+v", first.State.Player.Pos, second.State.Player.Pos)
	}
}

func TestLoopSnapshotIsolated(t *testing.T) {
	l, _, _ := newTestLoop(core.InputSample{Confirm: true})
	snap := l.Tick(16 * time.Millisecond)
	snap.State.Enemies[0].Pos.X = -999

	if l.Snapshot().State.Enemies[0].Pos.X == -999 {
		t.Error("snapshot shares enemy storage with the loop")
	}
}

func TestTickerSourceStopsOnCancel(t *testing.T) {
	src := &TickerSource{Interval: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- src.Run(ctx, func(elapsed time.Duration) {
			if elapsed < 0 {
				t.Errorf("negative elapsed %v", elapsed)
			}
			ticks.Add(1)
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if ticks.Load() == 0 {
		t.Error("no ticks delivered")
	}
}

func TestTickerSourceDispatch(t *testing.T) {
	queue := make(chan func(), 64)
	src := &TickerSource{
		Interval: time.Millisecond,
		Dispatch: func(fn func()) { queue <- fn },
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go src.Run(ctx, func(time.Duration) {})

	select {
	case fn := <-queue:
		fn()
	case <-time.After(time.Second):
		t.Fatal("no dispatched tick")
	}
}
