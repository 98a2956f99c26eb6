// Package audio plays the game's sound effects through the beep speaker.
package audio

import (
	"sync"
	"time"

	"retro-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Player mixes sound effects onto the speaker. Until Initialize succeeds every
// Play is a no-op, so a machine without audio runs silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         zerolog.Logger
}

func NewPlayer(volume float64, log zerolog.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := NewSound(s, p.volume, sampleRate)
	if st == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
	p.log.Debug().Stringer("sound", s).Msg("play")
}

// OnEvent plays the sound bound to an engine event; it is a game.Listener
func (p *Player) OnEvent(ev game.Event) {
	p.Play(SoundFor(ev))
}

// SoundFor picks the effect for an engine event
func SoundFor(ev game.Event) Sound {
	switch ev.Kind {
	case game.EventStarted:
		return SoundStart
	case game.EventFoodEaten:
		return SoundEat
	case game.EventSpecialFoodSpawned:
		return SoundSpawn
	case game.EventSpecialFoodEaten:
		return SoundBonus
	case game.EventGameOver:
		if ev.NewHighScore {
			return SoundHighScore
		}
		return SoundGameOver
	default:
		return SoundNone
	}
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
