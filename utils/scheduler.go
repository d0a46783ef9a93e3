package utils

import (
	"sync"
	"time"
)

// Scheduler runs one-shot delayed tasks tied to its own lifetime. The UI
// has a couple of deferred moments (the weekly tip toast, dismissing a badge
// celebration); a timer that outlives its owner must do nothing when it
// fires, so tasks are dropped once Stop is called and each task can be
// cancelled individually.
type Scheduler struct {
	mu      sync.Mutex
	stopped bool
	nextID  int
	tasks   map[int]*task
}

type task struct {
	timer *time.Timer
	// done is closed once the task has either run to completion or can no
	// longer run. cancel waits on it when it loses the race to the timer,
	// so a caller never observes a fire after cancel has returned.
	done chan struct{}
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[int]*task)}
}

// After runs fn once after delay. When the returned cancel func returns, the
// task has either already completed or will never run; calling it again, or
// after the task has run, is a no-op.
func (s *Scheduler) After(delay time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return func() {}
	}

	id := s.nextID
	s.nextID++

	tk := &task{done: make(chan struct{})}
	tk.timer = time.AfterFunc(delay, func() {
		defer close(tk.done)
		s.mu.Lock()
		// Removing the id from the map is the claim to run: a cancel or
		// Stop that got there first already deleted it, and then the task
		// must not fire even though the timer expired.
		if _, ok := s.tasks[id]; !ok {
			s.mu.Unlock()
			return
		}
		delete(s.tasks, id)
		s.mu.Unlock()
		fn()
	})
	s.tasks[id] = tk

	return func() {
		s.mu.Lock()
		if _, ok := s.tasks[id]; ok {
			delete(s.tasks, id)
			stopped := tk.timer.Stop()
			s.mu.Unlock()
			if stopped {
				// The callback will never run, so it cannot close done.
				close(tk.done)
			}
			return
		}
		s.mu.Unlock()
		// The task claimed the run (or was already cancelled or stopped);
		// wait until it has fully settled before returning.
		<-tk.done
	}
}

// Stop cancels all pending tasks and rejects new ones.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, tk := range s.tasks {
		if tk.timer.Stop() {
			close(tk.done)
		}
		delete(s.tasks, id)
	}
}
