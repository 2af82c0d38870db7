package vmath

import "time"

// Rand is a xorshift64 generator; not safe for concurrent use
type Rand struct {
	state uint64
}

// NewRand seeds a generator; seed 0 is replaced by the current time
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = 1
	}
	return &Rand{state: seed}
}

func (r *Rand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Unit returns a uniform value in the closed interval [0, 1]
func (r *Rand) Unit() float64 {
	const max53 = 1<<53 - 1
	return float64(r.Next()>>11) / max53
}

// Range returns a uniform value in [min, max], derived from Unit
func (r *Rand) Range(min, max float64) float64 {
	return r.Unit()*(max-min) + min
}

// Duration returns a uniform duration in [min, max]
func (r *Rand) Duration(min, max time.Duration) time.Duration {
	return time.Duration(r.Range(float64(min), float64(max)))
}
