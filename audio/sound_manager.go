package audio

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays cues through the speaker
// Every method is safe to call before Initialize or after a failed one; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	muted       bool
	played      int
}

// NewSoundManager creates a sound manager; cfg nil means DefaultConfig
func NewSoundManager(cfg *Config, logger *log.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayCue starts a cue without blocking; unknown cues are logged and dropped
func (sm *SoundManager) PlayCue(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s, err := NewCue(name, sm.cfg)
	if err != nil {
		sm.logger.Printf("play: %v", err)
		return
	}

	// The speaker goroutine reads the mixer; it must be locked while adding
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues handed to the mixer
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// ToggleMute flips cue playback on or off and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	sm.logger.Printf("muted: %v", sm.muted)
	return sm.muted
}

// IsMuted reports whether cues are being dropped
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
