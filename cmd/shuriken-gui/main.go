// Command shuriken-gui runs the game in a window: click or tap to throw
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/lixenwraith/shuriken/audio"
	"github.com/lixenwraith/shuriken/config"
	"github.com/lixenwraith/shuriken/gui"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/scene"
	"github.com/lixenwraith/shuriken/service"
	"github.com/lixenwraith/shuriken/vmath"
)

func main() {
	cfg, err := config.LoadWith(os.Args[1:], os.LookupEnv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "shuriken-gui: %v\n", err)
		os.Exit(2)
	}

	// No screen to protect here, so debug logs go straight to stderr
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg, log.Default(), service.NewHub(), gui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "shuriken-gui: %v\n", err)
		os.Exit(1)
	}
}

// run starts services on hub, plays one window session and stops every started service before returning
func run(cfg *config.Config, logger *log.Logger, hub *service.Hub, play func(*gui.Game) error) error {
	audioSvc := audio.NewService(logger)
	if err := hub.Register(audioSvc, cfg.Audio); err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	width, height := parameter.WindowWidth, parameter.WindowHeight
	if cfg.Width > 0 {
		width = cfg.Width
	}
	if cfg.Height > 0 {
		height = cfg.Height
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	game, err := gui.NewGame(scene.EncounterConfig{
		Field:  vmath.V2(float64(width), float64(height)),
		Sizes:  parameter.PixelSizes,
		Rand:   vmath.NewRand(seed),
		Audio:  audioSvc.Player(),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	return play(game)
}
