// Package session hosts one game panel: it owns the tick scheduler, routes keys
// while the panel is open and records finished games.
package session

import (
	"io"
	"time"

	"retro-snake/clock"
	"retro-snake/game"
	"retro-snake/game/manager"
	"retro-snake/game/types"
	"retro-snake/input"
	"retro-snake/stats"
	"retro-snake/ui"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Sounds receives engine events; audio.Player satisfies it
type Sounds interface {
	OnEvent(ev game.Event)
	Close()
}

type Options struct {
	Grid         types.Grid
	TickInterval time.Duration
	HighScores   manager.HighScoreStore
	Source       rand.Source
	Theme        ui.Theme
	// Stats may be nil, in which case games are kept in memory only
	Stats  *stats.GameStats
	Sounds Sounds
	Clock  clock.TimeProvider
	Log    zerolog.Logger
	// Closers are released by Shutdown after stats are saved
	Closers []io.Closer
}

type Session struct {
	id         string
	engine     *game.Engine
	controller *input.Controller
	scheduler  *clock.Scheduler
	renderer   *ui.Renderer
	stats      *stats.GameStats
	sounds     Sounds
	clock      clock.TimeProvider
	log        zerolog.Logger
	closers    []io.Closer

	open      bool
	startedAt time.Time
	lastGame  string
	onClose   func()
}

func New(opts Options) *Session {
	if opts.Clock == nil {
		opts.Clock = clock.NewMonotonicTimeProvider()
	}
	if opts.Stats == nil {
		opts.Stats = stats.NewGameStats("")
	}
	if opts.Source == nil {
		opts.Source = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	id := uuid.New().String()
	engine := game.NewEngine(opts.Grid, opts.HighScores, opts.Source)
	s := &Session{
		id:         id,
		engine:     engine,
		controller: input.NewController(engine),
		renderer:   ui.NewRenderer(opts.Theme),
		stats:      opts.Stats,
		sounds:     opts.Sounds,
		clock:      opts.Clock,
		log:        opts.Log.With().Str("session", id).Logger(),
		closers:    opts.Closers,
	}
	s.scheduler = clock.NewScheduler(opts.TickInterval, opts.Clock, engine.Tick)

	engine.Subscribe(s.onEvent)
	if s.sounds != nil {
		engine.Subscribe(s.sounds.OnEvent)
	}
	return s
}

// OnClose registers a callback run whenever the panel closes
func (s *Session) OnClose(fn func()) {
	s.onClose = fn
}

// Open shows the panel on the menu and starts taking keys
func (s *Session) Open() {
	if s.open {
		return
	}
	s.engine.Reset()
	s.open = true
	s.log.Debug().Msg("opened")
}

// Close hides the panel. The tick schedule is cancelled and any running game is discarded.
func (s *Session) Close() {
	if !s.open {
		return
	}
	s.scheduler.Stop()
	s.engine.Reset()
	s.open = false
	s.log.Debug().Msg("closed")

	if s.onClose != nil {
		s.onClose()
	}
}

func (s *Session) IsOpen() bool {
	return s.open
}

// HandleKey routes a key press to the game. Keys are ignored while the panel is closed.
func (s *Session) HandleKey(k input.Key) input.Command {
	if !s.open {
		return input.CommandNone
	}

	cmd := s.controller.HandleKey(k)
	if cmd == input.CommandClose {
		s.Close()
	}
	return cmd
}

// Update runs the game tick when one is due and reports whether it did
func (s *Session) Update() bool {
	if !s.open {
		return false
	}
	ticked := s.scheduler.Poll()
	if s.engine.State() != types.Playing && s.scheduler.Running() {
		s.scheduler.Stop()
	}
	return ticked
}

// Draw paints the board and, when hud is non-nil, the score strip
func (s *Session) Draw(board, hud ui.Canvas, now time.Time) {
	snap := s.engine.Snapshot()
	s.renderer.Draw(board, snap, now)
	if hud != nil {
		s.renderer.DrawHUD(hud, ui.HUD{
			Score:     snap.Score,
			HighScore: snap.HighScore,
			Stats:     s.stats.Summary(),
		})
	}
}

func (s *Session) onEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventStarted:
		s.startedAt = s.clock.Now()
		// A fresh period for every game
		s.scheduler.Stop()
		s.scheduler.Start()
		s.log.Debug().Msg("game started")

	case game.EventGameOver:
		s.scheduler.Stop()
		s.lastGame = s.stats.AddGame(ev.Score, ev.Length, ev.Collision.String(), s.startedAt, s.clock.Now())
		s.log.Info().
			Str("game", s.lastGame).
			Int("score", ev.Score).
			Int("length", ev.Length).
			Stringer("collision", ev.Collision).
			Bool("new_high_score", ev.NewHighScore).
			Msg("game over")

	case game.EventSpecialFoodSpawned, game.EventSpecialFoodExpired:
		s.log.Debug().Stringer("event", ev.Kind).Int("x", ev.Pos.X).Int("y", ev.Pos.Y).Msg("special food")
	}
}

// Shutdown closes the panel, saves stats and releases audio and the given closers.
// Every failure is reported.
func (s *Session) Shutdown() error {
	s.Close()

	var result error
	if err := s.stats.Save(); err != nil {
		result = multierror.Append(result, err)
	}
	if s.sounds != nil {
		s.sounds.Close()
	}
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Engine() *game.Engine {
	return s.engine
}

func (s *Session) Stats() *stats.GameStats {
	return s.stats
}

// LastGame is the stats id of the most recently finished game, empty before the first
func (s *Session) LastGame() string {
	return s.lastGame
}

func (s *Session) Scheduler() *clock.Scheduler {
	return s.scheduler
}
