package page

import "time"

// Task is a cancelable callback owned by a Scheduler.
type Task struct {
	interval  time.Duration
	next      time.Time
	fn        func(now time.Time)
	cancelled bool
}

// Cancel stops the task. It is safe to call more than once.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Cancelled reports whether Cancel has been called.
func (t *Task) Cancelled() bool {
	return t == nil || t.cancelled
}

// Scheduler runs recurring and per-frame tasks against caller supplied time.
// It never reads the wall clock.
type Scheduler struct {
	now   time.Time
	tasks []*Task
}

// NewScheduler returns a scheduler whose clock starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the last time passed to Advance (or the start time).
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every registers fn to run once per interval, first at Now()+interval.
// A non-positive interval is treated as a frame task.
func (s *Scheduler) Every(interval time.Duration, fn func(now time.Time)) *Task {
	if interval <= 0 {
		return s.Frames(fn)
	}
	t := &Task{interval: interval, next: s.now.Add(interval), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Frames registers fn to run on every Advance.
func (s *Scheduler) Frames(fn func(now time.Time)) *Task {
	t := &Task{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock to now and runs every due task. Periodic tasks that
// fell behind run once for each missed period, receiving the period's due time.
// Time never moves backwards; an earlier now is ignored.
func (s *Scheduler) Advance(now time.Time) {
	if now.Before(s.now) {
		return
	}
	s.now = now

	tasks := append([]*Task(nil), s.tasks...)
	for _, t := range tasks {
		if t.cancelled {
			continue
		}
		if t.interval == 0 {
			t.fn(now)
			continue
		}
		for !t.cancelled && !now.Before(t.next) {
			due := t.next
			t.next = t.next.Add(t.interval)
			t.fn(due)
		}
	}
	s.compact()
}

// Active returns the number of tasks not yet cancelled.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll cancels every registered task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
}

func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
