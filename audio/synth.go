package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/diamond-run/vmath"
)

// WaveType selects the oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sample maps a phase in [0, 1) to an amplitude in [-1, 1]
func (w WaveType) sample(phase float64, rng *vmath.FastRand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator is a mono wave duplicated to both channels, for a fixed number of samples
type oscillator struct {
	wave      WaveType
	step      float64
	phase     float64
	remaining int
	rng       *vmath.FastRand
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) *oscillator {
	n := rate.N(duration)
	return &oscillator{
		wave:      wave,
		step:      freq / float64(rate),
		remaining: n,
		// Noise needs no variety between plays; a fixed stream keeps sounds reproducible
		rng: vmath.NewFastRand(math.Float64bits(freq) ^ uint64(n)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.remaining <= 0 {
		return 0, false
	}
	n := min(len(samples), o.remaining)
	for i := range n {
		v := o.wave.sample(o.phase, o.rng)
		samples[i] = [2]float64{v, v}
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	o.remaining -= n
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps gain up over the attack and down to zero over the release
type envelope struct {
	s            beep.Streamer
	pos          int
	attack       int
	releaseStart int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) *envelope {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	return &envelope{
		s:            s,
		attack:       att,
		releaseStart: max(total-rate.N(release), att),
		total:        total,
	}
}

// gain returns the envelope level at sample pos
func (e *envelope) gain(pos int) float64 {
	switch {
	case pos >= e.total:
		return 0
	case pos < e.attack:
		return float64(pos) / float64(e.attack)
	case pos >= e.releaseStart:
		return float64(e.total-pos) / float64(e.total-e.releaseStart)
	default:
		return 1
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	n, ok := e.s.Stream(samples[:min(len(samples), e.total-e.pos)])
	for i := range n {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// newVolume applies a linear gain; zero or less is silent rather than log2(0)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is one enveloped note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}
