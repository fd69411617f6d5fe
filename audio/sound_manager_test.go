package audio

import (
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
)

// TestSoundManagerGracefulDegradation verifies every operation is safe without initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for c := core.CueStart; c < core.CueCount; c++ {
		sm.Cue(c)
	}
	if _, err := sm.ToggleMute(); err != ErrNotInitialized {
		t.Errorf("ToggleMute err = %v, want ErrNotInitialized", err)
	}
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)
	if err := sm.Initialize(); err != ErrDisabled {
		t.Fatalf("Initialize err = %v, want ErrDisabled", err)
	}
	if sm.Enabled() {
		t.Error("disabled manager reports enabled")
	}
}

// TestSoundManagerInitialization verifies initialize and cleanup against a real device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	// Speaker initialization fails in CI without audio devices; the game runs silent then
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got: %v", err)
	}
	sm.Cleanup()
}

// TestCueNeverBlocksWhenSaturated fills the queue with no consumer running
func TestCueNeverBlocksWhenSaturated(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(nil, reg)
	sm.initialized.Store(true)

	extra := 10
	done := make(chan struct{})
	go func() {
		for i := 0; i < parameter.CueQueueSize+extra; i++ {
			sm.Cue(core.CueDiamond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cue blocked on a full queue")
	}
	if got := reg.Ints.Get(status.KeyCuesDropped).Load(); got != int64(extra) {
		t.Errorf("dropped = %d, want %d", got, extra)
	}
}

// TestPlaybackGoroutine runs the worker with a recording output
func TestPlaybackGoroutine(t *testing.T) {
	reg := status.NewRegistry()
	sm := NewSoundManager(nil, reg)

	var mu sync.Mutex
	var got int
	sm.play = func(s beep.Streamer) {
		mu.Lock()
		got++
		mu.Unlock()
	}

	sm.mu.Lock()
	sm.startLocked()
	sm.mu.Unlock()

	sm.Cue(core.CueStart)
	sm.Cue(core.CueHit)

	deadline := time.Now().Add(time.Second)
	for reg.Ints.Get(status.KeyCuesPlayed).Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	// Stop the worker without touching the speaker
	sm.initialized.Store(false)
	close(sm.stop)
	<-sm.stopped

	mu.Lock()
	defer mu.Unlock()
	if got != 2 {
		t.Errorf("played %d streamers, want 2", got)
	}
}

// TestMutedCuesDiscarded verifies muted cues never reach the queue
func TestMutedCuesDiscarded(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	sm.initialized.Store(true)

	muted, err := sm.ToggleMute()
	if err != nil || !muted {
		t.Fatalf("ToggleMute = %v, %v", muted, err)
	}
	sm.Cue(core.CueVictory)
	if len(sm.queue) != 0 {
		t.Errorf("queue length %d while muted", len(sm.queue))
	}
}
