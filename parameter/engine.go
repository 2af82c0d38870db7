package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the terminal frame and logic interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single logic step after stalls (window drag, suspend)
	MaxFrameDelta = 60 * time.Millisecond

	// EventQueueSize is the initial capacity of the per-encounter event queue
	EventQueueSize = 64
)

// System priorities, lower runs first
const (
	PriorityMotion  = 10
	PriorityTimer   = 20
	PriorityContact = 30
)
