package event

import (
	"github.com/lixenwraith/shuriken/parameter"
)

// Queue is a FIFO of game events produced and consumed on the logic goroutine
// Not safe for concurrent use
type Queue struct {
	events []GameEvent
	frame  int64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		events: make([]GameEvent, 0, parameter.EventQueueSize),
	}
}

// SetFrame stamps subsequently pushed events with the given frame number
func (q *Queue) SetFrame(frame int64) {
	q.frame = frame
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	if ev.Frame == 0 {
		ev.Frame = q.frame
	}
	q.events = append(q.events, ev)
}

// Emit pushes an event built from type and payload
func (q *Queue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, parameter.EventQueueSize)
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear drops all pending events
func (q *Queue) Clear() {
	q.events = q.events[:0]
}
