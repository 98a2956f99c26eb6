package session

import (
	"io"
	"time"

	"retro-snake/audio"
	"retro-snake/config"
	"retro-snake/game/types"
	"retro-snake/stats"
	"retro-snake/storage"
	"retro-snake/ui"

	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Setup wires a session from the command line settings. Missing or unreadable data
// and a missing sound device are logged; the game still runs.
func Setup(cfg config.Config, log zerolog.Logger, closers ...io.Closer) *Session {
	theme, ok := ui.ThemeByName(cfg.Theme)
	if !ok {
		theme = ui.Retro
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	history := stats.NewGameStats(cfg.StatsPath())
	if err := history.Load(); err != nil {
		log.Warn().Err(err).Str("path", cfg.StatsPath()).Msg("starting with empty stats")
	}

	var sounds Sounds
	if cfg.Sound {
		player := audio.NewPlayer(cfg.Volume, log)
		if err := player.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, playing silent")
		} else {
			sounds = player
		}
	}

	log.Info().
		Int("grid", cfg.GridSize).
		Dur("tick", cfg.TickInterval).
		Str("theme", theme.Name).
		Uint64("seed", seed).
		Msg("session setup")

	return New(Options{
		Grid:         types.Grid{Size: cfg.GridSize},
		TickInterval: cfg.TickInterval,
		HighScores:   storage.NewHighScore(storage.NewFileStore(cfg.StoragePath()), log),
		Source:       rand.NewSource(seed),
		Theme:        theme,
		Stats:        history,
		Sounds:       sounds,
		Log:          log,
		Closers:      closers,
	})
}

// Summary is the colored line printed when a host exits
func (s *Session) Summary() string {
	sum := s.stats.Summary()
	return cfmt.Sprintf("{{snake:}}::lightGreen|bold %d games, best %d, average %.1f, high score {{%d}}::lightYellow|bold",
		sum.GamesPlayed, sum.MaxScore, sum.AverageScore, s.engine.HighScore())
}

// ReportError prints err in the hosts' error style
func ReportError(header string, err error) {
	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}
