package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// fadeSamples smooths the tone edges so the speaker does not click.
const fadeSamples = 256

// tone is a sine wave of fixed length.
type tone struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
	n    int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) *tone {
	return &tone{sr: sr, freq: freq, gain: gain, n: sr.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.n {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.n {
			break
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr)) * t.gain * t.envelope()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error {
	return nil
}

func (t *tone) envelope() float64 {
	if edge := t.n - t.pos; edge < fadeSamples {
		return float64(edge) / fadeSamples
	}
	if t.pos < fadeSamples {
		return float64(t.pos) / fadeSamples
	}
	return 1
}

// chime is the built-in two note signal used when no sound file is set.
func chime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(sr, 880, 180*time.Millisecond, 0.4),
		newTone(sr, 1320, 260*time.Millisecond, 0.4),
	)
}
