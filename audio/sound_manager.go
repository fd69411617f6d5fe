package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
)

// SoundManager turns simulation cues into synthesized sounds
// Cue never blocks: cues go through a bounded queue to a playback goroutine, overflow is dropped
type SoundManager struct {
	mu      sync.Mutex
	cfg     *AudioConfig
	mixer   *beep.Mixer
	queue   chan core.Cue
	stop    chan struct{}
	stopped chan struct{}

	initialized atomic.Bool
	muted       atomic.Bool

	// play hands a streamer to the output; replaced in tests
	play func(beep.Streamer)

	enabledMetric *atomic.Bool
	mutedMetric   *atomic.Bool
	played        *atomic.Int64
	dropped       *atomic.Int64
}

// NewSoundManager creates a sound manager; nil cfg uses the defaults, nil reg a private registry
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	sm := &SoundManager{
		cfg:           cfg,
		mixer:         &beep.Mixer{},
		queue:         make(chan core.Cue, parameter.CueQueueSize),
		enabledMetric: reg.Bools.Get(status.KeyAudioEnabled),
		mutedMetric:   reg.Bools.Get(status.KeyAudioMuted),
		played:        reg.Ints.Get(status.KeyCuesPlayed),
		dropped:       reg.Ints.Get(status.KeyCuesDropped),
	}
	sm.play = sm.playToSpeaker
	return sm
}

// Initialize opens the speaker and starts the playback goroutine
// A second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized.Load() {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.startLocked()
	log.Printf("[AUDIO] initialized at %d Hz, master volume %.2f", sm.cfg.SampleRate, sm.cfg.MasterVolume)
	return nil
}

// startLocked launches the playback goroutine; caller holds mu
func (sm *SoundManager) startLocked() {
	sm.stop = make(chan struct{})
	sm.stopped = make(chan struct{})
	sm.initialized.Store(true)
	sm.enabledMetric.Store(true)

	stop, stopped := sm.stop, sm.stopped
	core.Go(func() {
		defer close(stopped)
		sm.run(stop)
	})
}

// Cleanup stops playback and clears the mixer; safe without Initialize
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized.Load() {
		return
	}
	sm.initialized.Store(false)
	sm.enabledMetric.Store(false)

	close(sm.stop)
	<-sm.stopped

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// Cue queues a sound for c; never blocks
func (sm *SoundManager) Cue(c core.Cue) {
	if !sm.initialized.Load() || sm.muted.Load() {
		return
	}
	select {
	case sm.queue <- c:
	default:
		sm.dropped.Add(1)
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() (bool, error) {
	if !sm.initialized.Load() {
		return sm.muted.Load(), ErrNotInitialized
	}
	m := !sm.muted.Load()
	sm.SetMuted(m)
	return m, nil
}

// SetMuted sets the mute state; cues arriving while muted are discarded
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.mutedMetric.Store(muted)
	log.Printf("[AUDIO] muted=%v", muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Enabled reports whether the output device is open
func (sm *SoundManager) Enabled() bool {
	return sm.initialized.Load()
}

func (sm *SoundManager) run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case c := <-sm.queue:
			if sm.muted.Load() {
				continue
			}
			s := GetSoundEffect(c, sm.cfg)
			if s == nil {
				continue
			}
			sm.play(s)
			sm.played.Add(1)
		}
	}
}

func (sm *SoundManager) playToSpeaker(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
