// Package terminal owns the tcell screen and its input polling goroutine
package terminal

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shuriken/core"
)

// ErrNotInitialized is returned when the screen is used before Init
var ErrNotInitialized = errors.New("screen not initialized")

// ScreenService manages the screen lifecycle and input polling
type ScreenService struct {
	screen  tcell.Screen
	logger  *log.Logger
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewService creates a screen service; a nil screen means tcell.NewScreen at Init
func NewService(screen tcell.Screen, logger *log.Logger) *ScreenService {
	return &ScreenService{
		screen:  screen,
		logger:  logger,
		eventCh: make(chan tcell.Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name implements Service
func (s *ScreenService) Name() string {
	return "screen"
}

// Dependencies implements Service
func (s *ScreenService) Dependencies() []string {
	return nil
}

// Init implements Service: creates and initializes the screen, enables mouse reporting
func (s *ScreenService) Init(args ...any) error {
	screen := s.screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("screen create: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		s.screen = nil
		return fmt.Errorf("screen init: %w", err)
	}
	s.screen = screen
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.Clear()

	core.SetCrashReset(func() {
		screen.Fini()
		EmergencyReset(os.Stdout)
	})

	w, h := s.screen.Size()
	s.logf("screen %dx%d", w, h)
	return nil
}

// Start implements Service - launches input polling goroutine
func (s *ScreenService) Start() error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	core.Go(s.pollLoop)
	return nil
}

// pollLoop reads input events until stop signal
func (s *ScreenService) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Stop implements Service - signals stop and restores the terminal
func (s *ScreenService) Stop() error {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	if s.screen == nil {
		return nil
	}

	if wasRunning {
		close(s.stopCh)
		// Fini makes PollEvent return nil
		s.screen.Fini()
		<-s.doneCh
	} else {
		s.screen.Fini()
	}
	core.SetCrashReset(nil)
	s.screen = nil
	return nil
}

// Screen returns the wrapped screen
func (s *ScreenService) Screen() tcell.Screen {
	return s.screen
}

// Events returns the input event channel
func (s *ScreenService) Events() <-chan tcell.Event {
	return s.eventCh
}

func (s *ScreenService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
