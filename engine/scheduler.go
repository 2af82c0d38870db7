package engine

import (
	"container/heap"
	"time"

	"github.com/lixenwraith/shuriken/core"
)

// task is a continuation due at a point on the scheduler's timeline
type task struct {
	at       time.Duration
	seq      uint64 // Insertion order, breaks ties between equal deadlines
	interval time.Duration
	owner    core.Entity
	fn       func()
	index    int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler runs deferred continuations on the logic goroutine
// Time only moves through Advance; continuations fire in (deadline, insertion) order
type Scheduler struct {
	now      time.Duration
	seq      uint64
	queue    taskQueue
	byOwner  map[core.Entity]map[*task]struct{}
	draining bool
}

// NewScheduler creates a scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		byOwner: make(map[core.Entity]map[*task]struct{}),
	}
}

// Now returns the scheduler's elapsed time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of queued continuations
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After runs fn once, d from now; owner 0 means the work is not tied to an entity
func (s *Scheduler) After(d time.Duration, owner core.Entity, fn func()) {
	if d < 0 {
		d = 0
	}
	s.push(&task{at: s.now + d, owner: owner, fn: fn})
}

// Every runs fn after delay and then every interval until cancelled
func (s *Scheduler) Every(delay, interval time.Duration, owner core.Entity, fn func()) {
	if interval <= 0 {
		panic("engine: Scheduler.Every requires a positive interval")
	}
	if delay < 0 {
		delay = 0
	}
	s.push(&task{at: s.now + delay, interval: interval, owner: owner, fn: fn})
}

// Cancel drops every pending continuation owned by the entity and returns how many
func (s *Scheduler) Cancel(owner core.Entity) int {
	tasks, ok := s.byOwner[owner]
	if !ok {
		return 0
	}
	for t := range tasks {
		if t.index >= 0 {
			heap.Remove(&s.queue, t.index)
		}
	}
	delete(s.byOwner, owner)
	return len(tasks)
}

// Clear drops all pending continuations
func (s *Scheduler) Clear() {
	for _, t := range s.queue {
		t.index = -1
	}
	s.queue = s.queue[:0]
	s.byOwner = make(map[core.Entity]map[*task]struct{})
}

// Advance moves time forward by dt and runs everything that became due, returning the count
// Continuations scheduled during the drain that are already due run in the same call
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.draining {
		panic("engine: Scheduler.Advance called from a continuation")
	}
	s.draining = true
	defer func() { s.draining = false }()

	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for len(s.queue) > 0 && s.queue[0].at <= s.now {
		t := heap.Pop(&s.queue).(*task)
		if t.interval > 0 {
			// Re-queue before running so the continuation can cancel itself
			t.at += t.interval
			s.seq++
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			s.untrack(t)
		}
		t.fn()
		ran++
	}
	return ran
}

func (s *Scheduler) push(t *task) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
	tasks, ok := s.byOwner[t.owner]
	if !ok {
		tasks = make(map[*task]struct{})
		s.byOwner[t.owner] = tasks
	}
	tasks[t] = struct{}{}
}

func (s *Scheduler) untrack(t *task) {
	if tasks, ok := s.byOwner[t.owner]; ok {
		delete(tasks, t)
		if len(tasks) == 0 {
			delete(s.byOwner, t.owner)
		}
	}
}
