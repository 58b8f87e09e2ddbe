package core

import "time"

// Task identifies a callback queued on a Scheduler. The zero Task refers to
// nothing and is safe to cancel.
type Task uint64

type pendingTask struct {
	id  Task
	due time.Duration
	fn  func()
}

// Scheduler runs deferred callbacks against a simulation clock that only moves
// when Advance is called. Callbacks fire on the goroutine calling Advance, in
// due order, ties broken by scheduling order.
type Scheduler struct {
	step  time.Duration
	now   time.Duration
	next  Task
	tasks []pendingTask
}

// NewScheduler constructs a Scheduler whose Tick advances by 1/tps seconds.
func NewScheduler(tps int) *Scheduler {
	s := &Scheduler{}
	s.SetTPS(tps)
	return s
}

// SetTPS changes the tick rate used by Tick.
func (s *Scheduler) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	s.step = time.Second / time.Duration(tps)
}

// Step reports the duration of a single tick.
func (s *Scheduler) Step() time.Duration { return s.step }

// Now reports the simulation time elapsed so far.
func (s *Scheduler) Now() time.Duration { return s.now }

// After queues fn to run once the clock has advanced by at least d.
func (s *Scheduler) After(d time.Duration, fn func()) Task {
	if d < 0 {
		d = 0
	}
	s.next++
	s.tasks = append(s.tasks, pendingTask{id: s.next, due: s.now + d, fn: fn})
	return s.next
}

// Cancel drops a queued task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(t Task) bool {
	if t == 0 {
		return false
	}
	for i := range s.tasks {
		if s.tasks[i].id == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports how many tasks are waiting to fire.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Tick advances the clock by one fixed step.
func (s *Scheduler) Tick() { s.Advance(s.step) }

// Advance moves the clock forward by d and fires every task that became due.
// Tasks queued by a firing callback wait for the next call even when due.
func (s *Scheduler) Advance(d time.Duration) {
	if d > 0 {
		s.now += d
	}
	limit := s.next
	for {
		idx := -1
		for i, t := range s.tasks {
			if t.id > limit || t.due > s.now {
				continue
			}
			if idx < 0 || t.due < s.tasks[idx].due {
				idx = i
			}
		}
		if idx < 0 {
			return
		}
		fn := s.tasks[idx].fn
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		if fn != nil {
			fn()
		}
	}
}
