package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound identifies one of the game's sound effects
type Sound int

const (
	SoundNone      Sound = iota
	SoundStart           // new game
	SoundEat             // regular food
	SoundSpawn           // special food appeared
	SoundBonus           // special food eaten
	SoundGameOver        // collision
	SoundHighScore       // collision that beat the high score
)

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundEat:
		return "eat"
	case SoundSpawn:
		return "spawn"
	case SoundBonus:
		return "bonus"
	case SoundGameOver:
		return "game_over"
	case SoundHighScore:
		return "high_score"
	default:
		return "none"
	}
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite tone of the given shape
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
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

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

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

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq     float64
	duration time.Duration
}

func tone(n note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.duration, wave, rate)
	return NewEnvelope(osc, n.duration, 5*time.Millisecond, n.duration/3, rate)
}

func melody(notes []note, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, wave, rate))
	}
	return beep.Seq(parts...)
}

// NewSound builds a fresh streamer for s at volume (0..1). SoundNone yields nil.
func NewSound(s Sound, volume float64, rate beep.SampleRate) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundStart:
		st = melody([]note{{523.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}}, WaveSquare, rate)
	case SoundEat:
		st = tone(note{880, 60 * time.Millisecond}, WaveSquare, rate)
	case SoundSpawn:
		st = melody([]note{{1318.51, 40 * time.Millisecond}, {2637.02, 100 * time.Millisecond}}, WaveSine, rate)
	case SoundBonus:
		st = melody([]note{
			{987.77, 50 * time.Millisecond},
			{1318.51, 50 * time.Millisecond},
			{1975.53, 120 * time.Millisecond},
		}, WaveSquare, rate)
	case SoundGameOver:
		st = melody([]note{
			{392.00, 120 * time.Millisecond},
			{311.13, 120 * time.Millisecond},
			{196.00, 300 * time.Millisecond},
		}, WaveSaw, rate)
	case SoundHighScore:
		st = melody([]note{
			{523.25, 80 * time.Millisecond},
			{659.25, 80 * time.Millisecond},
			{783.99, 80 * time.Millisecond},
			{1046.50, 240 * time.Millisecond},
		}, WaveSquare, rate)
	default:
		return nil
	}
	return newVolume(st, volume)
}
