package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveType defines oscillator wave shapes.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates raw audio waves for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
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
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
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

// newVolume wraps a streamer with a volume effect.
// math.Log2(0) is -Inf, so zero volume is handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tickSound is a short click played once per timer second.
func tickSound(rate beep.SampleRate) beep.Streamer {
	const d = 30 * time.Millisecond
	osc := newOscillator(1200.0, d, waveSquare, rate)
	shaped := newEnvelope(osc, d, 2*time.Millisecond, 20*time.Millisecond, rate)
	return newVolume(shaped, 0.15)
}

// winSound is an ascending three-note chime.
func winSound(rate beep.SampleRate) beep.Streamer {
	const note = 120 * time.Millisecond
	notes := []float64{523.25, 659.25, 783.99} // C5, E5, G5

	seq := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		osc := newOscillator(freq, note, waveSine, rate)
		seq = append(seq, newEnvelope(osc, note, 5*time.Millisecond, 60*time.Millisecond, rate))
	}
	return newVolume(beep.Seq(seq...), 0.5)
}

// loseSound is a noise burst over a falling rumble.
func loseSound(rate beep.SampleRate) beep.Streamer {
	const d = 400 * time.Millisecond

	noise := newEnvelope(newOscillator(0, d, waveNoise, rate), d, 2*time.Millisecond, 350*time.Millisecond, rate)
	rumble := newEnvelope(newOscillator(70.0, d, waveSine, rate), d, 2*time.Millisecond, 300*time.Millisecond, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.4),
		newVolume(rumble, 0.6),
	)
	return newVolume(mixed, 0.6)
}
