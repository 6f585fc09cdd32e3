package deform

import (
	"sort"
	"time"
)

// Scheduler runs one-shot tasks on the caller's timeline. Time only moves
// when Advance is called, so tasks fire on the same goroutine that drives
// the controller.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	tasks  []*task
}

type task struct {
	id        uint64
	due       time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// Token identifies a scheduled task and can cancel it.
type Token struct {
	t *task
}

// Cancel stops the task from firing. It returns false if the task already
// fired or was cancelled before.
func (tk Token) Cancel() bool {
	if tk.t == nil || tk.t.fired || tk.t.cancelled {
		return false
	}
	tk.t.cancelled = true
	return true
}

// Active reports whether the task is still waiting to fire.
func (tk Token) Active() bool {
	return tk.t != nil && !tk.t.fired && !tk.t.cancelled
}

// NewScheduler returns an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now is the scheduler's elapsed time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := &task{id: s.nextID, due: s.now + delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return Token{t: t}
}

// Advance moves time forward and runs every task that became due, in due
// order (ties in scheduling order). Tasks scheduled by a running task fire in
// the same call if they are already due.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for {
		due := s.popDue()
		if due == nil {
			return ran
		}
		due.fired = true
		due.fn()
		ran++
	}
}

func (s *Scheduler) popDue() *task {
	s.compact()
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due == s.tasks[j].due {
			return s.tasks[i].id < s.tasks[j].id
		}
		return s.tasks[i].due < s.tasks[j].due
	})
	head := s.tasks[0]
	if head.due > s.now {
		return nil
	}
	s.tasks = s.tasks[1:]
	return head
}

func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled && !t.fired {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Pending counts tasks that have not fired and were not cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

// CancelAll drops every pending task and returns how many were dropped.
func (s *Scheduler) CancelAll() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled && !t.fired {
			t.cancelled = true
			n++
		}
	}
	s.tasks = s.tasks[:0]
	return n
}
