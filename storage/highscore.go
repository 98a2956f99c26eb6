package storage

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"
)

// HighScoreKey names the slot holding the best score
const HighScoreKey = "snake-high-score"

// HighScore adapts a KV into the engine's high score capability.
// Storage problems never reach the player: reads fall back to 0, failed writes are dropped.
type HighScore struct {
	kv  KV
	key string
	log zerolog.Logger
}

func NewHighScore(kv KV, log zerolog.Logger) *HighScore {
	return &HighScore{
		kv:  kv,
		key: HighScoreKey,
		log: log.With().Str("component", "highscore").Logger(),
	}
}

func (h *HighScore) Get() int {
	raw, err := h.kv.Get(h.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.log.Warn().Err(err).Msg("high score unavailable, using 0")
		}
		return 0
	}

	score, err := strconv.Atoi(raw)
	if err != nil || score < 0 {
		h.log.Warn().Str("value", raw).Msg("malformed high score, using 0")
		return 0
	}
	return score
}

func (h *HighScore) Set(score int) {
	if err := h.kv.Set(h.key, strconv.Itoa(score)); err != nil {
		h.log.Warn().Err(err).Int("score", score).Msg("failed to persist high score")
		return
	}
	h.log.Debug().Int("score", score).Msg("high score saved")
}
