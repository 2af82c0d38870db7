package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/shuriken/core"
)

func TestSchedulerRunsInDeadlineOrder(t *testing.T) {
	s := NewScheduler()
	var order []int

	s.After(300*time.Millisecond, 0, func() { order = append(order, 3) })
	s.After(100*time.Millisecond, 0, func() { order = append(order, 1) })
	s.After(200*time.Millisecond, 0, func() { order = append(order, 2) })

	if ran := s.Advance(50 * time.Millisecond); ran != 0 {
		t.Errorf("Expected nothing due at 50ms, got %d", ran)
	}
	if ran := s.Advance(time.Second); ran != 3 {
		t.Errorf("Expected 3 continuations, got %d", ran)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("Expected order [1 2 3], got %v", order)
	}
}

func TestSchedulerTiesKeepInsertionOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(time.Second, 0, func() { order = append(order, "a") })
	s.After(time.Second, 0, func() { order = append(order, "b") })
	s.After(time.Second, 0, func() { order = append(order, "c") })

	s.Advance(time.Second)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("Expected [a b c], got %v", order)
	}
}

func TestSchedulerCancelByOwner(t *testing.T) {
	s := NewScheduler()
	fired := 0
	owner := core.Entity(7)

	s.After(time.Second, owner, func() { fired++ })
	s.After(2*time.Second, owner, func() { fired++ })
	s.After(time.Second, 8, func() { fired += 10 })

	if n := s.Cancel(owner); n != 2 {
		t.Errorf("Expected 2 cancelled, got %d", n)
	}
	if n := s.Cancel(owner); n != 0 {
		t.Errorf("Expected second cancel to be a no-op, got %d", n)
	}

	s.Advance(5 * time.Second)
	if fired != 10 {
		t.Errorf("Expected only the other owner's task to fire, got %d", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected empty queue, got %d", s.Pending())
	}
}

func TestSchedulerEveryRepeatsUntilCancelled(t *testing.T) {
	s := NewScheduler()
	owner := core.Entity(1)
	count := 0
	s.Every(0, time.Second, owner, func() { count++ })

	s.Advance(0)
	if count != 1 {
		t.Fatalf("Expected immediate first run, got %d", count)
	}

	s.Advance(3 * time.Second)
	if count != 4 {
		t.Errorf("Expected 4 runs after 3s, got %d", count)
	}

	s.Cancel(owner)
	s.Advance(5 * time.Second)
	if count != 4 {
		t.Errorf("Expected no runs after cancel, got %d", count)
	}
}

func TestSchedulerEveryCanCancelItself(t *testing.T) {
	s := NewScheduler()
	owner := core.Entity(3)
	count := 0
	s.Every(time.Second, time.Second, owner, func() {
		count++
		if count == 2 {
			s.Cancel(owner)
		}
	})

	s.Advance(10 * time.Second)
	if count != 2 {
		t.Errorf("Expected 2 runs, got %d", count)
	}
}

func TestSchedulerEveryRejectsZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero interval")
		}
	}()
	NewScheduler().Every(0, 0, 0, func() {})
}

func TestSchedulerDueTasksScheduledDuringDrainRunSameCall(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(time.Second, 0, func() {
		order = append(order, "first")
		s.After(0, 0, func() { order = append(order, "chained") })
		s.After(time.Hour, 0, func() { order = append(order, "later") })
	})

	ran := s.Advance(time.Second)
	if ran != 2 {
		t.Errorf("Expected 2 continuations in one drain, got %d", ran)
	}
	if len(order) != 2 || order[1] != "chained" {
		t.Errorf("Expected [first chained], got %v", order)
	}
	if s.Pending() != 1 {
		t.Errorf("Expected the hour-later task to stay queued, got %d", s.Pending())
	}
}

func TestSchedulerAdvanceIsNotReentrant(t *testing.T) {
	s := NewScheduler()
	panicked := false
	s.After(0, 0, func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		s.Advance(time.Second)
	})
	s.Advance(0)
	if !panicked {
		t.Error("Expected nested Advance to panic")
	}
}

func TestSchedulerNegativeDelayClampsToNow(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)
	fired := false
	s.After(-time.Minute, 0, func() { fired = true })
	s.Advance(0)
	if !fired {
		t.Error("Expected negative delay to fire on the next drain")
	}
	if s.Now() != time.Second {
		t.Errorf("Expected now to stay at 1s, got %v", s.Now())
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(time.Second, 1, func() { fired = true })
	s.Every(0, time.Second, 2, func() { fired = true })
	s.Clear()

	s.Advance(time.Minute)
	if fired {
		t.Error("Expected cleared tasks not to fire")
	}
	if n := s.Cancel(1); n != 0 {
		t.Errorf("Expected owner index cleared, got %d", n)
	}
}
