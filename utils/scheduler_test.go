package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsTask(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	done := make(chan struct{})
	s.After(10*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Bool
	cancel := s.After(20*time.Millisecond, func() { fired.Store(true) })
	cancel()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load(), "cancelled task must not fire")

	// Cancelling again is a no-op.
	cancel()
}

func TestSchedulerCancelAtExpiry(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	// Cancel right as the timer expires. Whichever side claims the task
	// first wins, but once cancel has returned without the task having
	// fired, it must never fire.
	for i := 0; i < 200; i++ {
		var fired atomic.Bool
		cancel := s.After(200*time.Microsecond, func() { fired.Store(true) })
		time.Sleep(200 * time.Microsecond)
		cancel()
		if fired.Load() {
			continue
		}
		time.Sleep(2 * time.Millisecond)
		assert.False(t, fired.Load(), "task fired after cancel returned")
	}
}

func TestSchedulerStopDropsPending(t *testing.T) {
	s := NewScheduler()

	var fired atomic.Bool
	s.After(20*time.Millisecond, func() { fired.Store(true) })
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load(), "stopped scheduler must not run pending tasks")

	// After Stop, new tasks are rejected silently.
	s.After(time.Millisecond, func() { fired.Store(true) })
	time.Sleep(20 * time.Millisecond)
	assert.False(t, fired.Load())
}
