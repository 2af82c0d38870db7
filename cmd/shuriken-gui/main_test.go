package main

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/lixenwraith/shuriken/config"
	"github.com/lixenwraith/shuriken/gui"
	"github.com/lixenwraith/shuriken/service"
)

type stopRecorder struct {
	stopped bool
}

func (s *stopRecorder) Name() string           { return "recorder" }
func (s *stopRecorder) Dependencies() []string { return nil }
func (s *stopRecorder) Init(...any) error      { return nil }
func (s *stopRecorder) Start() error           { return nil }
func (s *stopRecorder) Stop() error {
	s.stopped = true
	return nil
}

func mutedConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()
	noEnv := func(string) (string, bool) { return "", false }
	cfg, err := config.LoadWith(append([]string{"-mute"}, args...), noEnv, io.Discard)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func TestRunStopsServicesWhenWindowFails(t *testing.T) {
	hub := service.NewHub()
	rec := &stopRecorder{}
	if err := hub.Register(rec); err != nil {
		t.Fatalf("Failed to register recorder: %v", err)
	}

	windowErr := errors.New("no display")
	err := run(mutedConfig(t), log.New(io.Discard, "", 0), hub, func(*gui.Game) error {
		if rec.stopped {
			t.Error("Expected services running while the window is open")
		}
		return windowErr
	})

	if !errors.Is(err, windowErr) {
		t.Errorf("Expected window error, got %v", err)
	}
	if !rec.stopped {
		t.Error("Expected services stopped before run returns")
	}
}

func TestRunAppliesWindowOverrides(t *testing.T) {
	var width, height int
	err := run(mutedConfig(t, "-width", "640", "-height", "200"), log.New(io.Discard, "", 0), service.NewHub(),
		func(g *gui.Game) error {
			width, height = g.Layout(0, 0)
			return nil
		})
	if err != nil {
		t.Fatalf("Expected clean run, got %v", err)
	}
	if width != 640 || height != 200 {
		t.Errorf("Expected 640x200, got %dx%d", width, height)
	}
}
