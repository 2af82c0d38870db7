package audio

import (
	"errors"
	"io"
	"log"
	"sync/atomic"
)

// AudioService wraps SoundManager as a service
// Handles graceful degradation when no audio device is available
type AudioService struct {
	manager  *SoundManager
	logger   *log.Logger
	disabled atomic.Bool
}

// NewService creates a new audio service
func NewService(logger *log.Logger) *AudioService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &AudioService{logger: logger}
}

// Name implements Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: *Config - output settings, DefaultConfig when absent
func (s *AudioService) Init(args ...any) error {
	cfg := DefaultConfig()
	if len(args) > 0 {
		if c, ok := args[0].(*Config); ok && c != nil {
			cfg = c
		}
	}
	s.manager = NewSoundManager(cfg, s.logger)
	return nil
}

// Start implements Service
// Opens the speaker; sets disabled on failure (no error returned)
func (s *AudioService) Start() error {
	if s.manager == nil {
		s.disabled.Store(true)
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		if !errors.Is(err, ErrAudioDisabled) {
			s.logger.Printf("audio unavailable, running muted: %v", err)
		}
	}
	return nil
}

// Stop implements Service
func (s *AudioService) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// Player returns the cue player; it is never nil and is silent when audio is disabled
func (s *AudioService) Player() *SoundManager {
	if s.manager == nil {
		s.manager = NewSoundManager(DefaultConfig(), s.logger)
	}
	return s.manager
}
