package audio

import (
	"github.com/lixenwraith/shuriken/core"
)

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64            // 0.0 - 1.0
	SampleRate   int                // Hz
	CueVolumes   map[string]float64 // Per-cue gain, 1.0 when absent
}

// DefaultConfig returns audio enabled at 70% volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   44100,
		CueVolumes: map[string]float64{
			core.CuePewPew: 0.8,
		},
	}
}

// cueVolume returns the effective gain for a cue
func (c *Config) cueVolume(cue string) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}
