// Package audio turns the sound cues emitted by the simulation into short
// synthesized effects played through beep.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/arkanoo/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates one raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	sweep    float64 // frequency change per second
	phase    float64
	position int
	total    int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a wave generator. sweep bends the pitch linearly over
// time in Hz per second.
func NewOscillator(freq, sweep float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		sweep: sweep,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		noise: rand.New(rand.NewPCG(uint64(freq*1000), 0x5eed)), //#nosec G115 -- only seeds cosmetic noise
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
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially after a linear attack.
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     float64 // e-folds per second
	sr       beep.SampleRate
}

// NewDecay shapes s with a short attack and an exponential tail.
func NewDecay(s beep.Streamer, attack time.Duration, rate float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: sr.N(attack), rate: rate, sr: sr}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := range n {
		vol := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		if d.position < d.attack {
			vol *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales a stream linearly. Zero or less is silent, since
// effects.Volume works in log space.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, sweep float64, d time.Duration, wave Wave, fade float64) beep.Streamer {
	return NewDecay(NewOscillator(freq, sweep, d, wave, sampleRate), 2*time.Millisecond, fade, sampleRate)
}

// Cue builds the effect for a sound tag at the given volume (0..1).
// Unknown tags return nil.
func Cue(snd core.Sound, vol float64) beep.Streamer {
	var s beep.Streamer
	switch snd {
	case core.SoundBounce:
		s = tone(660, 0, 40*time.Millisecond, WaveSquare, 40)
	case core.SoundLifeLost:
		s = beep.Seq(
			tone(392, 0, 120*time.Millisecond, WaveSaw, 8),
			tone(262, -200, 250*time.Millisecond, WaveSaw, 6),
		)
	case core.SoundFire:
		s = beep.Mix(
			newVolume(tone(0, 0, 120*time.Millisecond, WaveNoise, 25), 0.4),
			newVolume(tone(220, 1600, 120*time.Millisecond, WaveSquare, 20), 0.3),
		)
	case core.SoundGlassBreak:
		s = beep.Mix(
			newVolume(tone(0, 0, 150*time.Millisecond, WaveNoise, 30), 0.5),
			newVolume(tone(1800, 0, 150*time.Millisecond, WaveSine, 25), 0.3),
		)
	case core.SoundExplosion:
		s = beep.Mix(
			newVolume(tone(0, 0, 400*time.Millisecond, WaveNoise, 8), 0.6),
			newVolume(tone(70, -60, 400*time.Millisecond, WaveSine, 6), 0.5),
		)
	default:
		return nil
	}
	return newVolume(s, vol)
}
