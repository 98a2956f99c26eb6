// Package clock runs a repeating task from a host's own event loop.
package clock

import (
	"time"
)

// Scheduler fires a task on a fixed period. It owns no goroutine: the host calls Poll
// from its loop and the task runs on the caller's goroutine, at most once per Poll.
type Scheduler struct {
	interval time.Duration
	task     func()
	clock    TimeProvider

	running  bool
	inTask   bool
	deadline time.Time
	ticks    uint64
}

// NewScheduler creates a stopped scheduler; a nil clock uses the system time
func NewScheduler(interval time.Duration, clock TimeProvider, task func()) *Scheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Scheduler{
		interval: interval,
		task:     task,
		clock:    clock,
	}
}

// Start arms the schedule; the first run is one interval from now.
// Starting a running scheduler restarts its period.
func (s *Scheduler) Start() {
	s.running = true
	s.deadline = s.clock.Now().Add(s.interval)
}

// Stop disarms the schedule. Pending runs are dropped.
func (s *Scheduler) Stop() {
	s.running = false
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Ticks returns how many times the task has run
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Poll runs the task if a deadline has passed and reports whether it ran.
// Calls made from inside the task are ignored.
func (s *Scheduler) Poll() bool {
	if !s.running || s.inTask {
		return false
	}

	now := s.clock.Now()
	if now.Before(s.deadline) {
		return false
	}

	due := s.deadline
	s.inTask = true
	s.task()
	s.inTask = false
	s.ticks++

	// The task may have stopped or restarted the schedule
	if !s.running || !s.deadline.Equal(due) {
		return true
	}

	s.deadline = s.deadline.Add(s.interval)
	// Resync instead of bursting when the host stalled
	if now.Sub(s.deadline) > s.interval*2 {
		s.deadline = now.Add(s.interval)
	}
	return true
}
