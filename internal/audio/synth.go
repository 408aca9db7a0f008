package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite wave generator. Noise is seeded so the
// same sound renders the same samples every time.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
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
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
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

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero
// gain is expressed as silence.
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

// note is one step of the background melody. Zero frequency is a rest.
type note struct {
	freq float64
	beat float64
}

// melody is a short cheerful loop in C major.
var melody = []note{
	{523.25, 1}, {659.25, 1}, {783.99, 1}, {659.25, 1},
	{698.46, 1}, {880.00, 1}, {783.99, 2},
	{659.25, 1}, {587.33, 1}, {523.25, 1}, {587.33, 1},
	{659.25, 1}, {523.25, 1}, {0, 2},
}

const beatDuration = 180 * time.Millisecond

// MusicStreamer renders the melody once; loop it with beep.Loop.
func MusicStreamer(rate beep.SampleRate) beep.StreamSeeker {
	parts := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		d := time.Duration(n.beat * float64(beatDuration))
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		osc := NewOscillator(n.freq, d, WaveSquare, rate)
		parts = append(parts, NewEnvelope(osc, d, 10*time.Millisecond, d/2, rate))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(newVolume(beep.Seq(parts...), 0.15))
	return buf.Streamer(0, buf.Len())
}

// BombStreamer is a noise burst over a low thump.
func BombStreamer(rate beep.SampleRate) beep.Streamer {
	d := 400 * time.Millisecond
	noise := NewEnvelope(NewOscillator(1, d, WaveNoise, rate), d, 2*time.Millisecond, 380*time.Millisecond, rate)
	thump := NewEnvelope(NewOscillator(60, d, WaveSine, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.5), newVolume(thump, 0.6)), 0.8)
}

// UhStreamer is a short falling two-note grunt played when the bunny is hit.
func UhStreamer(rate beep.SampleRate) beep.Streamer {
	d1, d2 := 120*time.Millisecond, 260*time.Millisecond
	first := NewEnvelope(NewOscillator(220, d1, WaveSaw, rate), d1, 5*time.Millisecond, 30*time.Millisecond, rate)
	second := NewEnvelope(NewOscillator(165, d2, WaveSaw, rate), d2, 5*time.Millisecond, 200*time.Millisecond, rate)
	return newVolume(beep.Seq(first, second), 0.4)
}
