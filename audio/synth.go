// Package audio synthesizes the radio stations and owns playback state
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates an oscillator streaming duration worth of samples
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := o.sample()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveTriangle:
		return 4*math.Abs(o.phase-0.5) - 1
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveNoise:
		return o.rng.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		samples[i][0] *= e.gain()
		samples[i][1] *= e.gain()
		e.position++
	}
	return n, ok
}

func (e *envelope) gain() float64 {
	vol := 1.0
	if e.attackSamples > 0 && e.position < e.attackSamples {
		vol = float64(e.position) / float64(e.attackSamples)
	}
	releaseStart := e.totalSamples - e.releaseSamples
	if e.releaseSamples > 0 && e.position >= releaseStart {
		vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
	}
	return math.Max(vol, 0)
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain in [0,1].
// math.Log2(0) is -Inf, so 0 maps to a silent volume
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// chordSeq endlessly cycles note chords, rebuilding each from oscillators and envelopes
type chordSeq struct {
	rate    beep.SampleRate
	rng     *rand.Rand
	chords  [][]float64
	length  time.Duration
	wave    WaveType
	index   int
	current beep.Streamer
}

func (c *chordSeq) next() beep.Streamer {
	chord := c.chords[c.index%len(c.chords)]
	c.index++
	voices := make([]beep.Streamer, 0, len(chord))
	for _, f := range chord {
		osc := NewOscillator(f, c.length, c.wave, c.rate, c.rng)
		shaped := NewEnvelope(osc, c.length, c.length/4, c.length/3, c.rate)
		voices = append(voices, newVolume(shaped, 1/float64(len(chord))))
	}
	return beep.Mix(voices...)
}

func (c *chordSeq) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if c.current == nil {
			c.current = c.next()
		}
		m, more := c.current.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			c.current = nil
		}
	}
	return n, true
}

func (c *chordSeq) Err() error { return nil }

// crackle is sparse vinyl noise: mostly silence with random clicks
type crackle struct {
	rng     *rand.Rand
	density float64
	level   float64
	tail    float64
}

func (g *crackle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.rng.Float64() < g.density {
			g.tail = g.level * (g.rng.Float64()*2 - 1)
		}
		samples[i][0] = g.tail
		samples[i][1] = g.tail
		g.tail *= 0.6
	}
	return len(samples), true
}

func (g *crackle) Err() error { return nil }

// rain is one-pole low-passed noise with occasional drip chirps
type rain struct {
	rate  beep.SampleRate
	rng   *rand.Rand
	lp    float64
	drip  float64
	dripF float64
	t     int
}

func (g *rain) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		white := g.rng.Float64()*2 - 1
		g.lp += 0.08 * (white - g.lp)

		if g.drip <= 0.001 && g.rng.Float64() < 4.0/float64(g.rate) {
			g.drip = 0.25
			g.dripF = 900 + g.rng.Float64()*1400
		}
		d := 0.0
		if g.drip > 0.001 {
			d = g.drip * math.Sin(2*math.Pi*g.dripF*float64(g.t)/float64(g.rate))
			g.drip *= 0.9993
			g.dripF *= 0.99995
		}

		s := 0.6*g.lp + d
		samples[i][0] = s
		samples[i][1] = s
		g.t++
	}
	return len(samples), true
}

func (g *rain) Err() error { return nil }

// Lofi progression: Fmaj7, Em7, Dm7, Cmaj7
var lofiChords = [][]float64{
	{174.61, 220.00, 261.63, 329.63},
	{164.81, 196.00, 246.94, 293.66},
	{146.83, 174.61, 220.00, 261.63},
	{130.81, 164.81, 196.00, 246.94},
}

// NewLofiStream is an endless mellow chord loop over vinyl crackle
func NewLofiStream(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	chords := &chordSeq{
		rate:   rate,
		rng:    rng,
		chords: lofiChords,
		length: 2400 * time.Millisecond,
		wave:   WaveTriangle,
	}
	return beep.Mix(
		newVolume(chords, 0.5),
		&crackle{rng: rng, density: 0.0004, level: 0.2},
	)
}

// NewRainStream is endless rain noise
func NewRainStream(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return newVolume(&rain{rate: rate, rng: rng}, 0.7)
}
