package engine

import "time"

// System is an interface that all systems must implement
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}
