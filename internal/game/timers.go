package game

import (
	"slices"
	"time"
)

// Clock measures simulation time from the start of play.
type Clock interface {
	// Tick is called once at the start of every frame and returns the
	// current time.
	Tick() time.Duration
	Now() time.Duration
}

// FrameClock advances by a fixed amount per frame. Replays driven by it are
// deterministic.
type FrameClock struct {
	step time.Duration
	now  time.Duration
}

func NewFrameClock(step time.Duration) *FrameClock {
	return &FrameClock{step: step}
}

func (c *FrameClock) Tick() time.Duration {
	c.now += c.step
	return c.now
}

func (c *FrameClock) Now() time.Duration {
	return c.now
}

// WallClock follows real time.
type WallClock struct {
	start time.Time
	now   time.Duration
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Tick() time.Duration {
	c.now = time.Since(c.start)
	return c.now
}

func (c *WallClock) Now() time.Duration {
	return c.now
}

type task struct {
	at time.Duration
	fn func()
}

// Scheduler holds deferred tasks keyed by an id, at most one per key. Due
// tasks run from the frame loop, between frames.
type Scheduler struct {
	tasks map[int]task
}

func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[int]task)}
}

// Schedule arms fn to run at the given time, replacing any task pending under
// the same key.
func (s *Scheduler) Schedule(key int, at time.Duration, fn func()) {
	s.tasks[key] = task{at: at, fn: fn}
}

// Cancel drops the task pending under key and reports whether there was one.
func (s *Scheduler) Cancel(key int) bool {
	_, ok := s.tasks[key]
	delete(s.tasks, key)
	return ok
}

func (s *Scheduler) Pending(key int) bool {
	_, ok := s.tasks[key]
	return ok
}

func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// RunDue runs every task due at or before now, in key order, and returns how
// many ran. A task is removed before it runs.
func (s *Scheduler) RunDue(now time.Duration) int {
	var due []int
	for key, t := range s.tasks {
		if t.at <= now {
			due = append(due, key)
		}
	}
	slices.Sort(due)
	ran := 0
	for _, key := range due {
		t, ok := s.tasks[key]
		if !ok {
			continue
		}
		delete(s.tasks, key)
		t.fn()
		ran++
	}
	return ran
}
