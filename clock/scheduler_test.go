package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestSchedulerFiresOnInterval(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	runs := 0
	s := NewScheduler(150*time.Millisecond, mock, func() { runs++ })

	if s.Poll() {
		t.Fatal("Expected stopped scheduler not to run")
	}

	s.Start()
	mock.Advance(100 * time.Millisecond)
	if s.Poll() {
		t.Error("Expected no run before the interval elapsed")
	}

	mock.Advance(50 * time.Millisecond)
	if !s.Poll() {
		t.Error("Expected run once the interval elapsed")
	}
	if s.Poll() {
		t.Error("Expected a single run per deadline")
	}

	mock.Advance(150 * time.Millisecond)
	s.Poll()

	if runs != 2 {
		t.Errorf("Expected 2 runs, got %d", runs)
	}
	if s.Ticks() != 2 {
		t.Errorf("Expected tick counter 2, got %d", s.Ticks())
	}
}

func TestSchedulerStopCancels(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	runs := 0
	s := NewScheduler(10*time.Millisecond, mock, func() { runs++ })

	s.Start()
	s.Stop()
	mock.Advance(time.Second)

	if s.Poll() || runs != 0 {
		t.Errorf("Expected no runs after Stop, got %d", runs)
	}
	if s.Running() {
		t.Error("Expected scheduler to report stopped")
	}
}

func TestSchedulerRestartResetsPeriod(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	runs := 0
	s := NewScheduler(100*time.Millisecond, mock, func() { runs++ })

	s.Start()
	mock.Advance(90 * time.Millisecond)
	s.Stop()
	s.Start()
	mock.Advance(20 * time.Millisecond)

	if s.Poll() {
		t.Error("Expected restarted scheduler to wait a full interval")
	}
	mock.Advance(80 * time.Millisecond)
	if !s.Poll() {
		t.Error("Expected run after a full interval since restart")
	}
}

func TestSchedulerNotReentrant(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	var s *Scheduler
	depth, maxDepth := 0, 0
	s = NewScheduler(time.Millisecond, mock, func() {
		depth++
		maxDepth = max(maxDepth, depth)
		mock.Advance(time.Second)
		s.Poll()
		depth--
	})

	s.Start()
	mock.Advance(time.Millisecond)
	s.Poll()

	if maxDepth != 1 {
		t.Errorf("Expected task never to nest, max depth %d", maxDepth)
	}
}

func TestSchedulerResyncsAfterStall(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	runs := 0
	s := NewScheduler(100*time.Millisecond, mock, func() { runs++ })

	s.Start()
	mock.Advance(10 * time.Second)

	for i := 0; i < 10; i++ {
		s.Poll()
	}

	if runs != 1 {
		t.Errorf("Expected one run after a stall instead of a burst, got %d", runs)
	}
}
