package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names recorded by the director
const (
	MetricRounds  = "rounds"
	MetricWon     = "won"
	MetricLost    = "lost"
	MetricKills   = "kills"    // Monsters destroyed across all rounds
	MetricFrameMs = "frame_ms" // Last simulation step
)

// Registry holds play statistics
// Writers hold cached pointers; readers may run on another goroutine
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Int returns the counter for name, creating it at zero
func (r *Registry) Int(name string) *atomic.Int64 {
	return r.Ints.Get(name)
}

// Float returns the gauge for name, creating it at zero
func (r *Registry) Float(name string) *AtomicFloat {
	return r.Floats.Get(name)
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// String renders every metric as sorted name=value pairs
func (r *Registry) String() string {
	var b strings.Builder
	r.Ints.Each(func(name string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", name, v.Load())
	})
	r.Floats.Each(func(name string, v *AtomicFloat) {
		fmt.Fprintf(&b, "%s=%.2f ", name, v.Get())
	})
	return strings.TrimSpace(b.String())
}
