// Package schedule provides cancellable, token-keyed tasks for component
// timers: delays that flip state after a transition, and animation-frame
// callbacks that must run after the current frame's style writes.
//
// A Scheduler never spawns goroutines. Due tasks run from Step, which the
// host calls once per frame, so every callback runs on the host's event loop.
package schedule

import (
	"time"

	"github.com/go-drift/drawer/pkg/animation"
)

// Token identifies a scheduled task. The zero Token is never issued.
type Token uint64

type task struct {
	token Token
	due   time.Time
	frame bool
	fn    func()

	cancelled bool
}

// Scheduler holds pending tasks for one component instance.
// The zero value is ready to use. It is not safe for concurrent use.
type Scheduler struct {
	tasks   []*task
	running []*task
	next    Token
}

// After schedules fn to run on the first Step at least d from now.
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	return s.add(&task{due: animation.Now().Add(d), fn: fn})
}

// RequestFrame schedules fn for the next Step, like requestAnimationFrame.
// Frames requested while a Step is running wait for the following Step.
func (s *Scheduler) RequestFrame(fn func()) Token {
	return s.add(&task{frame: true, fn: fn})
}

func (s *Scheduler) add(t *task) Token {
	s.next++
	t.token = s.next
	s.tasks = append(s.tasks, t)
	return t.token
}

// Cancel removes a pending task. It reports whether the task was pending;
// a task that already ran, or is running, cannot be cancelled.
func (s *Scheduler) Cancel(tok Token) bool {
	for _, t := range s.running {
		if t.token == tok && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	for i, t := range s.tasks {
		if t.token == tok {
			s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.running {
		t.cancelled = true
	}
	s.tasks = nil
}

// Pending returns the number of pending tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Step runs every frame task queued before the call and every timer that is
// due, in scheduling order, and returns how many ran. A task may cancel a
// later task of the same batch.
func (s *Scheduler) Step() int {
	if len(s.tasks) == 0 {
		return 0
	}
	now := animation.Now()
	var due, keep []*task
	for _, t := range s.tasks {
		if t.frame || !t.due.After(now) {
			due = append(due, t)
		} else {
			keep = append(keep, t)
		}
	}
	s.tasks = keep

	s.running = due
	defer func() { s.running = nil }()

	ran := 0
	for _, t := range due {
		if t.cancelled {
			continue
		}
		t.cancelled = true
		t.fn()
		ran++
	}
	return ran
}
