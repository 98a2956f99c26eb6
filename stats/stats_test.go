package stats

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAddGameAssignsID(t *testing.T) {
	s := NewGameStats("")
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	id := s.AddGame(40, 5, "wall", start, start.Add(30*time.Second))

	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected uuid id, got %q: %v", id, err)
	}
	games := s.GetStats()
	if len(games) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(games))
	}
	if games[0].Score != 40 || games[0].AverageDuration != 30 || games[0].Cause != "wall" {
		t.Errorf("Unexpected record: %+v", games[0])
	}
}

func TestSummaryEmpty(t *testing.T) {
	sum := NewGameStats("").Summary()
	if sum.GamesPlayed != 0 || sum.AverageScore != 0 || sum.MaxScore != 0 {
		t.Errorf("Expected zero summary, got %+v", sum)
	}
}

func TestGroupingKeepsTotals(t *testing.T) {
	s := NewGameStats("")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	total := 0
	n := GroupSize + 7
	for i := 0; i < n; i++ {
		score := i * 10
		total += score
		begin := start.Add(time.Duration(i) * time.Minute)
		s.AddGame(score, 1, "self", begin, begin.Add(10*time.Second))
	}

	games := s.GetStats()
	if len(games) != 8 {
		t.Fatalf("Expected 1 group + 7 singles, got %d records", len(games))
	}

	grouped := 0
	for _, g := range games {
		if g.CompressionIndex == 1 {
			grouped++
			if g.GamesCount != GroupSize {
				t.Errorf("Expected group of %d, got %d", GroupSize, g.GamesCount)
			}
		}
	}
	if grouped != 1 {
		t.Errorf("Expected one grouped record, got %d", grouped)
	}

	if got := s.GetGamesPlayed(); got != n {
		t.Errorf("Expected %d games played, got %d", n, got)
	}
	wantAvg := float64(total) / float64(n)
	if got := s.GetAverageScore(); got < wantAvg-0.001 || got > wantAvg+0.001 {
		t.Errorf("Expected average %.3f, got %.3f", wantAvg, got)
	}
	if got := s.GetMaxScore(); got != (n-1)*10 {
		t.Errorf("Expected max %d, got %d", (n-1)*10, got)
	}
	if got := s.GetAverageDuration(); got != 10 {
		t.Errorf("Expected average duration 10, got %f", got)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "stats.json")
	s := NewGameStats(path)
	start := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	s.AddGame(60, 7, "wall", start, start.Add(time.Minute))

	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := NewGameStats(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.GetGamesPlayed() != 1 || loaded.GetMaxScore() != 60 {
		t.Errorf("Unexpected loaded stats: %+v", loaded.GetStats())
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := NewGameStats(filepath.Join(t.TempDir(), "absent.json"))
	if err := s.Load(); err != nil {
		t.Errorf("Expected missing file to be ignored, got %v", err)
	}
}
