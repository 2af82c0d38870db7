package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/shuriken/core"
)

// oscillator generates raw audio waves, sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one pitch to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	pewDuration = 90 * time.Millisecond
	pewGap      = 30 * time.Millisecond
	leiDuration = 220 * time.Millisecond
	cueAttack   = 5 * time.Millisecond
)

// NewPewSound synthesizes the launch cue: two falling chirps and a short held note
func NewPewSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	pew := func() beep.Streamer {
		sweep := NewSweep(1800, 500, pewDuration, WaveSquare, rate)
		return newVolume(NewEnvelope(sweep, pewDuration, cueAttack, pewDuration/2, rate), 0.5)
	}
	gap := beep.Silence(rate.N(pewGap))

	// Fundamental with a soft fifth above
	leiFund := NewEnvelope(sineTone(rate, 660, leiDuration), leiDuration, cueAttack, leiDuration/2, rate)
	leiFifth := NewEnvelope(NewOscillator(990, leiDuration, WaveSine, rate), leiDuration, cueAttack, leiDuration/3, rate)
	lei := beep.Mix(newVolume(leiFund, 0.7), newVolume(leiFifth, 0.3))

	return newVolume(beep.Seq(pew(), gap, pew(), gap, lei), cfg.cueVolume(core.CuePewPew))
}

// sineTone returns d of a pure tone, falling back to the local oscillator above Nyquist
func sineTone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), tone)
}

// CueLength returns the number of samples in a cue at the configured rate
func CueLength(cue string, cfg *Config) (int, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	switch cue {
	case core.CuePewPew:
		return rate.N(2*pewDuration + 2*pewGap + leiDuration), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}
}

// NewCue returns a fresh streamer for the named cue
func NewCue(cue string, cfg *Config) (beep.Streamer, error) {
	switch cue {
	case core.CuePewPew:
		return NewPewSound(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCue, cue)
	}
}
