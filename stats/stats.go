// Package stats keeps the history of finished games.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GroupSize is the number of records folded into one at each compression level
const GroupSize = 100

// GameStats holds every recorded game, single or grouped
type GameStats struct {
	Games []GameRecord
	path  string
	mutex sync.RWMutex
}

// GameRecord describes one game (CompressionIndex 0) or a group of games
type GameRecord struct {
	ID               string    `json:"id,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	Length           int       `json:"length"`
	Cause            string    `json:"cause,omitempty"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// Summary is the aggregate shown on the HUD
type Summary struct {
	GamesPlayed  int
	AverageScore float64
	MaxScore     int
}

// NewGameStats creates empty stats persisted at path; an empty path keeps them in memory
func NewGameStats(path string) *GameStats {
	return &GameStats{
		Games: make([]GameRecord, 0),
		path:  path,
	}
}

// Load replaces the in-memory records with the file contents. A missing file is not an error.
func (s *GameStats) Load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read stats file: %w", err)
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return fmt.Errorf("failed to parse stats file: %w", err)
	}

	s.mutex.Lock()
	s.Games = games
	s.mutex.Unlock()
	return nil
}

// Save writes the records as JSON
func (s *GameStats) Save() error {
	if s.path == "" {
		return nil
	}

	s.mutex.RLock()
	data, err := json.Marshal(s.Games)
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

// AddGame records a finished game and returns its id
func (s *GameStats) AddGame(score, length int, cause string, startTime, endTime time.Time) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	duration := endTime.Sub(startTime).Seconds()
	record := GameRecord{
		ID:               uuid.New().String(),
		StartTime:        startTime,
		EndTime:          endTime,
		Score:            score,
		Length:           length,
		Cause:            cause,
		CompressionIndex: 0,
		GamesCount:       1,
		AverageScore:     float64(score),
		MaxScore:         score,
		MinScore:         score,
		AverageDuration:  duration,
		MaxDuration:      duration,
		MinDuration:      duration,
	}
	s.Games = append(s.Games, record)

	s.groupGames()
	return record.ID
}

// groupGames folds every GroupSize records of one compression level into a single record
// of the next level, keeping totals intact
func (s *GameStats) groupGames() {
	sort.Slice(s.Games, func(i, j int) bool {
		if s.Games[i].CompressionIndex != s.Games[j].CompressionIndex {
			return s.Games[i].CompressionIndex < s.Games[j].CompressionIndex
		}
		return s.Games[i].StartTime.Before(s.Games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records []GameRecord
		for _, game := range s.Games {
			if game.CompressionIndex == level {
				records = append(records, game)
			}
		}
		if len(records) < GroupSize {
			break
		}

		var folded []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				folded = append(folded, records[i:]...)
				break
			}
			folded = append(folded, fold(records[i:end], level+1))
		}

		remaining := make([]GameRecord, 0, len(s.Games))
		for _, game := range s.Games {
			if game.CompressionIndex != level {
				remaining = append(remaining, game)
			}
		}
		s.Games = append(remaining, folded...)
	}
}

func fold(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
	}

	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	return out
}

// GetStats returns a copy of the records
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.Games))
	copy(out, s.Games)
	return out
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	total := 0
	for _, game := range s.Games {
		total += game.GamesCount
	}
	return total
}

// GetAverageScore weighs every record by the games it stands for
func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalScore float64
	var totalGames int
	for _, game := range s.Games {
		totalScore += game.AverageScore * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalScore / float64(totalGames)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.Games {
		maxScore = max(maxScore, game.MaxScore)
	}
	return maxScore
}

func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var totalDuration float64
	var totalGames int
	for _, game := range s.Games {
		totalDuration += game.AverageDuration * float64(game.GamesCount)
		totalGames += game.GamesCount
	}
	if totalGames == 0 {
		return 0
	}
	return totalDuration / float64(totalGames)
}

func (s *GameStats) Summary() Summary {
	return Summary{
		GamesPlayed:  s.GetGamesPlayed(),
		AverageScore: s.GetAverageScore(),
		MaxScore:     s.GetMaxScore(),
	}
}
