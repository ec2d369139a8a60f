package assets

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SoundID enumerates the built-in synthesized sound effects.
type SoundID int

const (
	SoundError SoundID = iota
	SoundBell
	SoundWhoosh
	SoundCoin
)

const soundSampleRate = beep.SampleRate(44100)

var soundFormat = beep.Format{
	SampleRate:  soundSampleRate,
	NumChannels: 2,
	Precision:   2,
}

// NewSoundCache returns a cache whose loader synthesizes each sound into a
// reusable beep buffer on first Get. Buffers stream from memory, so one
// buffer serves any number of concurrent playbacks.
func NewSoundCache() *LazyCache[SoundID, *beep.Buffer] {
	return NewCache(16, func(id SoundID) (*beep.Buffer, error) {
		streamer, err := synthesize(id)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(soundFormat)
		buf.Append(streamer)
		return buf, nil
	})
}

func synthesize(id SoundID) (beep.Streamer, error) {
	switch id {
	case SoundError:
		// Short harsh saw buzz
		buzz := newTone(100.0, 150*time.Millisecond, waveSaw)
		return volume(fade(buzz, 150*time.Millisecond, 5*time.Millisecond, 50*time.Millisecond), 0.8), nil
	case SoundBell:
		// Fundamental (A5) plus its octave, fundamental ringing longer
		fund := fade(newTone(880.0, 400*time.Millisecond, waveSine), 400*time.Millisecond, 5*time.Millisecond, 350*time.Millisecond)
		over := fade(newTone(1760.0, 400*time.Millisecond, waveSine), 400*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond)
		return beep.Mix(volume(fund, 0.7), volume(over, 0.3)), nil
	case SoundWhoosh:
		// Noise burst with a fast attack
		noise := newTone(0, 200*time.Millisecond, waveNoise)
		return volume(fade(noise, 200*time.Millisecond, 20*time.Millisecond, 150*time.Millisecond), 0.5), nil
	case SoundCoin:
		// Two-note square chime (B5 then E6)
		n1 := fade(newTone(987.77, 80*time.Millisecond, waveSquare), 80*time.Millisecond, 2*time.Millisecond, 30*time.Millisecond)
		n2 := fade(newTone(1318.51, 200*time.Millisecond, waveSquare), 200*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond)
		return volume(beep.Seq(n1, n2), 0.6), nil
	}
	return nil, fmt.Errorf("unknown sound id: %d", id)
}

type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone generates a raw fixed-length wave.
type tone struct {
	freq     float64
	phase    float64
	shape    waveShape
	position int
	duration int
}

func newTone(freq float64, duration time.Duration, shape waveShape) beep.Streamer {
	return &tone{
		freq:     freq,
		shape:    shape,
		duration: soundSampleRate.N(duration),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		var val float64
		switch t.shape {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (t.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(soundSampleRate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func fade(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   soundSampleRate.N(attack),
		release:  soundSampleRate.N(release),
		total:    soundSampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales a stream; log2 of zero is -Inf, so zero goes silent instead.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
