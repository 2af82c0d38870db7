package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/shuriken/core"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayCue(core.CuePewPew)
	sm.PlayCue("unknown")
	sm.Cleanup()

	if sm.Played() != 0 {
		t.Errorf("Expected nothing played, got %d", sm.Played())
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	// Speaker initialization may fail in CI environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.PlayCue(core.CuePewPew)
	if sm.Played() != 1 {
		t.Errorf("Expected 1 cue played, got %d", sm.Played())
	}
	sm.Cleanup()
}

// TestAudioServiceDisabled verifies the service degrades to a silent player
func TestAudioServiceDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	svc := NewService(nil)
	if err := svc.Init(cfg); err != nil {
		t.Fatalf("Expected init to succeed, got %v", err)
	}
	if err := svc.Start(); err != nil {
		t.Fatalf("Expected start to succeed, got %v", err)
	}
	if !svc.IsDisabled() {
		t.Error("Expected service disabled")
	}
	if svc.Player() == nil {
		t.Fatal("Expected a non-nil silent player")
	}
	svc.Player().PlayCue(core.CuePewPew)
	if err := svc.Stop(); err != nil {
		t.Errorf("Expected stop to succeed, got %v", err)
	}
	if svc.Name() != "audio" {
		t.Errorf("Expected name audio, got %s", svc.Name())
	}
}

func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	if sm.IsMuted() {
		t.Fatal("Expected a new manager to be unmuted")
	}
	if !sm.ToggleMute() {
		t.Error("Expected first toggle to mute")
	}
	sm.PlayCue(core.CuePewPew)
	if sm.Played() != 0 {
		t.Errorf("Expected muted manager to drop cues, got %d played", sm.Played())
	}
	if sm.ToggleMute() {
		t.Error("Expected second toggle to unmute")
	}
}
