package mocks

import (
	"sync"
	"time"

	"github.com/dmesquita/olimpicos/internal/dependencies/scheduler"
)

// MockScheduler is a manual implementation of Scheduler for testing.
// Tasks never fire on their own; tests trigger them with Fire.
type MockScheduler struct {
	mu    sync.Mutex
	tasks map[scheduler.TaskID]mockTask
}

type mockTask struct {
	delay time.Duration
	fn    func()
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

// NewMockScheduler creates a new MockScheduler
func NewMockScheduler() *MockScheduler {
	return &MockScheduler{
		tasks: make(map[scheduler.TaskID]mockTask),
	}
}

// Schedule records the task without starting any timer
func (s *MockScheduler) Schedule(id scheduler.TaskID, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[id] = mockTask{delay: delay, fn: fn}
}

// Cancel removes a pending task
func (s *MockScheduler) Cancel(id scheduler.TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[id]
	delete(s.tasks, id)
	return ok
}

// CancelAll removes every pending task
func (s *MockScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[scheduler.TaskID]mockTask)
}

// Fire runs and removes the pending task with the given ID.
// Returns false if no such task is pending.
func (s *MockScheduler) Fire(id scheduler.TaskID) bool {
	s.mu.Lock()
	task, ok := s.tasks[id]
	delete(s.tasks, id)
	s.mu.Unlock()

	if !ok {
		return false
	}
	task.fn()
	return true
}

// FireAll repeatedly fires pending tasks until none remain.
// Tasks scheduled by fired tasks are fired too.
func (s *MockScheduler) FireAll() {
	for {
		s.mu.Lock()
		var id scheduler.TaskID
		var task mockTask
		found := false
		for tid, t := range s.tasks {
			id, task, found = tid, t, true
			break
		}
		if found {
			delete(s.tasks, id)
		}
		s.mu.Unlock()

		if !found {
			return
		}
		task.fn()
	}
}

// Pending reports whether a task with the given ID is scheduled
func (s *MockScheduler) Pending(id scheduler.TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[id]
	return ok
}

// PendingCount returns the number of scheduled tasks
func (s *MockScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Delay returns the delay a task was scheduled with
func (s *MockScheduler) Delay(id scheduler.TaskID) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[id]
	return task.delay, ok
}
