package manager

// HighScoreStore persists the best score across sessions.
// Implementations never fail: unreadable data reads as 0, failed writes are dropped.
type HighScoreStore interface {
	Get() int
	Set(score int)
}

// StateManager tracks the high score and decides when it is written back
type StateManager struct {
	store     HighScoreStore
	highScore int
}

// NewStateManager reads the stored high score once
func NewStateManager(store HighScoreStore) *StateManager {
	sm := &StateManager{store: store}
	if store != nil {
		sm.highScore = store.Get()
	}
	if sm.highScore < 0 {
		sm.highScore = 0
	}
	return sm
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// RecordGameOver raises the high score to max(high, score).
// The store is written only when score beats the previous high.
func (sm *StateManager) RecordGameOver(score int) bool {
	if score <= sm.highScore {
		return false
	}
	sm.highScore = score
	if sm.store != nil {
		sm.store.Set(score)
	}
	return true
}
