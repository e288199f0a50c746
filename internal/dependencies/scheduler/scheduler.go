package scheduler

import (
	"sync"
	"time"
)

// TaskID identifies a scheduled task. Callers key tasks by the interaction
// they belong to (e.g. "roll:<game-id>") so a superseded interaction's timer
// can be cancelled instead of firing against later state.
type TaskID string

// Scheduler provides cancellable single-shot delayed tasks that can be mocked
// for testing. Scheduling a task under an ID that already has a pending task
// replaces (cancels) the previous one.
type Scheduler interface {
	// Schedule runs fn after delay unless cancelled first
	Schedule(id TaskID, delay time.Duration, fn func())

	// Cancel stops a pending task. Returns true if a task was pending.
	Cancel(id TaskID) bool

	// CancelAll stops every pending task
	CancelAll()
}

// TimerScheduler implements Scheduler using time.AfterFunc
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[TaskID]*time.Timer
}

// New creates a new TimerScheduler
func New() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[TaskID]*time.Timer),
	}
}

var _ Scheduler = (*TimerScheduler)(nil)

// Schedule runs fn after delay, replacing any pending task with the same ID
func (s *TimerScheduler) Schedule(id TaskID, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}

	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		fn()
	})
}

// Cancel stops a pending task
func (s *TimerScheduler) Cancel(id TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, id)
	return true
}

// CancelAll stops every pending task
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
