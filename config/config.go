package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lixenwraith/shuriken/audio"
)

// Environment variables read by Load
const (
	EnvAudioEnabled = "SHURIKEN_AUDIO_ENABLED"
	EnvMasterVolume = "SHURIKEN_MASTER_VOLUME" // 0-100
	EnvSampleRate   = "SHURIKEN_SAMPLE_RATE"
	EnvSeed         = "SHURIKEN_SEED"
)

// Sentinel errors
var (
	ErrInvalidVolume = errors.New("master volume must be an integer in [0, 100]")
	ErrInvalidSize   = errors.New("field size must be positive")
	ErrInvalidEnv    = errors.New("invalid environment value")
)

// Config is the resolved runtime configuration
// Precedence: flags over environment over defaults
type Config struct {
	Debug bool
	Seed  uint64 // 0 seeds from the clock

	// Width and Height override the window size; 0 keeps the frontend default
	Width  int
	Height int

	Audio *audio.Config
}

// Load resolves configuration from the process environment and the given arguments
func Load(args []string) (*Config, error) {
	return LoadWith(args, os.LookupEnv, io.Discard)
}

// LoadWith resolves configuration using lookup for the environment; flag usage goes to output
func LoadWith(args []string, lookup func(string) (string, bool), output io.Writer) (*Config, error) {
	cfg := &Config{Audio: audio.DefaultConfig()}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("shuriken", flag.ContinueOnError)
	fs.SetOutput(output)
	debug := fs.Bool("debug", cfg.Debug, "Write logs to logs/shuriken.log")
	seed := fs.Uint64("seed", cfg.Seed, "Random seed for monster spawns (0 = clock)")
	mute := fs.Bool("mute", !cfg.Audio.Enabled, "Start with audio disabled")
	volume := fs.Int("volume", int(cfg.Audio.MasterVolume*100+0.5), "Master volume 0-100")
	width := fs.Int("width", 0, "Window width in pixels")
	height := fs.Int("height", 0, "Window height in pixels")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Debug = *debug
	cfg.Seed = *seed
	cfg.Audio.Enabled = !*mute
	if *volume < 0 || *volume > 100 {
		return nil, fmt.Errorf("-volume %d: %w", *volume, ErrInvalidVolume)
	}
	cfg.Audio.MasterVolume = float64(*volume) / 100.0
	if *width < 0 || *height < 0 {
		return nil, fmt.Errorf("%dx%d: %w", *width, *height, ErrInvalidSize)
	}
	cfg.Width = *width
	cfg.Height = *height

	return cfg, nil
}

// applyEnv layers environment variables over the defaults
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvAudioEnabled, v, ErrInvalidEnv)
		}
		cfg.Audio.Enabled = enabled
	}

	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil || vol < 0 || vol > 100 {
			return fmt.Errorf("%s=%q: %w", EnvMasterVolume, v, ErrInvalidVolume)
		}
		cfg.Audio.MasterVolume = float64(vol) / 100.0
	}

	if v, ok := lookup(EnvSampleRate); ok && v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return fmt.Errorf("%s=%q: %w", EnvSampleRate, v, ErrInvalidEnv)
		}
		cfg.Audio.SampleRate = rate
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidEnv)
		}
		cfg.Seed = seed
	}

	return nil
}
