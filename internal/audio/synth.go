package audio

import (
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length wave. Frequency slides linearly from
// freq to freq+sweep over the duration.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	position int
	rng      *rand.Rand
}

// NewOscillator creates a streamer that plays wave for duration.
func NewOscillator(freq, sweep float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		sweep: sweep,
		wave:  wave,
		rate:  rate,
		total: rate.N(duration),
		rng:   rand.New(rand.NewSource(int64(freq*1000) + int64(wave))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		o.phase += (o.freq + o.sweep*progress) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over the last release.
type envelope struct {
	streamer beep.Streamer
	attack   int
	release  int
	total    int
	position int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a streamer linearly. Zero or negative volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect is a synthesized sound used when no sample file is available.
type Effect int

const (
	EffectBlip Effect = iota
	EffectExplosion
	EffectHit
	EffectShoot
)

// EffectFor guesses the effect from a sound path such as
// "sounds/explosion.wav".
func EffectFor(path string) Effect {
	name := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	switch {
	case strings.Contains(name, "explo"):
		return EffectExplosion
	case strings.Contains(name, "hit"):
		return EffectHit
	case strings.Contains(name, "shoot"), strings.Contains(name, "laser"):
		return EffectShoot
	default:
		return EffectBlip
	}
}

// Synthesize builds the streamer for an effect at the given volume.
func Synthesize(effect Effect, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch effect {
	case EffectExplosion:
		d := 400 * time.Millisecond
		noise := NewEnvelope(NewOscillator(0, 0, d, WaveNoise, rate), d, 5*time.Millisecond, 350*time.Millisecond, rate)
		rumble := NewEnvelope(NewOscillator(90, -50, d, WaveSine, rate), d, 5*time.Millisecond, 300*time.Millisecond, rate)
		s = beep.Mix(withVolume(noise, 0.6), withVolume(rumble, 0.4))
	case EffectHit:
		d := 180 * time.Millisecond
		s = NewEnvelope(NewOscillator(140, -60, d, WaveSaw, rate), d, 2*time.Millisecond, 120*time.Millisecond, rate)
	case EffectShoot:
		d := 80 * time.Millisecond
		s = NewEnvelope(NewOscillator(1200, -700, d, WaveSquare, rate), d, time.Millisecond, 60*time.Millisecond, rate)
		s = withVolume(s, 0.3)
	default:
		d := 50 * time.Millisecond
		s = NewEnvelope(NewOscillator(880, 0, d, WaveSine, rate), d, time.Millisecond, 30*time.Millisecond, rate)
	}
	return withVolume(s, volume)
}
