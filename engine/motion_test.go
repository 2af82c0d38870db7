package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/shuriken/vmath"
)

func TestMotionLinearProgress(t *testing.T) {
	m := NewMotion(vmath.V2(0, 0), vmath.V2(100, 50), 2*time.Second)

	pos, done := m.Step(time.Second)
	if done {
		t.Fatal("Expected motion in progress at half time")
	}
	if !pos.Near(vmath.V2(50, 25), 1e-3) {
		t.Errorf("Expected midpoint (50,25), got %v", pos)
	}

	pos, done = m.Step(1500 * time.Millisecond)
	if !done || pos != vmath.V2(100, 50) {
		t.Errorf("Expected exact target on completion, got %v done=%v", pos, done)
	}
	if !m.Done() {
		t.Error("Expected Done after completion")
	}
}

func TestMotionZeroDurationCompletesImmediately(t *testing.T) {
	m := NewMotion(vmath.V2(1, 1), vmath.V2(5, 5), 0)
	pos, done := m.Step(0)
	if !done || pos != vmath.V2(5, 5) {
		t.Errorf("Expected immediate arrival, got %v done=%v", pos, done)
	}
}

func TestFrameClockClampsDelta(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewFrameClock(mock, 50*time.Millisecond)

	mock.Advance(16 * time.Millisecond)
	if dt := clock.Tick(); dt != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", dt)
	}

	mock.Advance(time.Second)
	if dt := clock.Tick(); dt != 50*time.Millisecond {
		t.Errorf("Expected clamp to 50ms, got %v", dt)
	}

	mock.Advance(time.Second)
	clock.Reset()
	if dt := clock.Tick(); dt != 0 {
		t.Errorf("Expected 0 after reset, got %v", dt)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected := startTime.Add(45 * time.Minute)
	if now := mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, now)
	}
}
