// Command shuriken runs the game in a terminal: click (or press space) to throw
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/shuriken/audio"
	"github.com/lixenwraith/shuriken/config"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/input"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/render"
	"github.com/lixenwraith/shuriken/scene"
	"github.com/lixenwraith/shuriken/service"
	"github.com/lixenwraith/shuriken/system"
	"github.com/lixenwraith/shuriken/terminal"
	"github.com/lixenwraith/shuriken/vmath"
)

func main() {
	// Panic Recovery: the screen service registers the terminal reset with core
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.LoadWith(os.Args[1:], os.LookupEnv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "shuriken: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, log.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "shuriken: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	hub := service.NewHub()
	screenSvc := terminal.NewService(nil, logger)
	audioSvc := audio.NewService(logger)
	if err := hub.Register(screenSvc); err != nil {
		return err
	}
	if err := hub.Register(audioSvc, cfg.Audio); err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		// Init may have taken the terminal before a later service failed
		screenSvc.Stop()
		return err
	}
	if err := hub.StartAll(); err != nil {
		screenSvc.Stop()
		return err
	}
	defer hub.StopAll()
	logger.Printf("services started: %v", hub.Order())

	screen := screenSvc.Screen()
	w, h := screen.Size()
	field := vmath.V2(float64(w), float64(h))

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("field %dx%d seed %d", w, h, seed)

	director := scene.NewDirector(scene.EncounterConfig{
		Field:  field,
		Sizes:  parameter.CellSizes,
		Rand:   vmath.NewRand(seed),
		Audio:  audioSvc.Player(),
		Logger: logger,
	})
	orchestrator := render.NewDefaultOrchestrator(screen)
	machine := input.NewMachine(nil)
	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-screenSvc.Events():
			intent := machine.Process(ev)
			switch intent.Type {
			case input.IntentQuit:
				logger.Printf("quit: %s", director.Stats())
				return nil
			case input.IntentToggleMute:
				audioSvc.Player().ToggleMute()
			case input.IntentResize:
				// The field keeps its starting size; a larger screen shows blank margins
				orchestrator.Resize(intent.Width, intent.Height)
			case input.IntentTouch:
				director.TouchEnded([]vmath.Vec2{intent.Point})
			case input.IntentFire:
				director.TouchEnded([]vmath.Vec2{fireTarget(field)})
			}

		case <-frameTicker.C:
			director.Update(clock.Tick())
			orchestrator.RenderFrame(director.View())
		}
	}
}

// fireTarget is the point a keyboard throw aims at: the far edge of the player's row
func fireTarget(field vmath.Vec2) vmath.Vec2 {
	return vmath.V2(field.X-0.5, system.PlayerAnchor(field).Y)
}
