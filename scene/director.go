package scene

import (
	"io"
	"log"
	"time"

	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/status"
	"github.com/lixenwraith/shuriken/vmath"
)

// Director owns the presented scene and moves between playing and result screens
// Playing -> Won|Lost on the encounter's outcome, then back to a fresh encounter through a flip
type Director struct {
	cfg    EncounterConfig
	logger *log.Logger

	phase      Phase
	active     Scene
	encounter  *Encounter
	gameOver   *GameOver
	transition *Transition
	rounds     int
	stats      *status.Registry
}

// NewDirector creates a director presenting a fresh encounter
func NewDirector(cfg EncounterConfig) *Director {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	d := &Director{
		cfg:    cfg,
		logger: log.New(logger.Writer(), "[director] ", logger.Flags()),
		stats:  status.NewRegistry(),
	}
	d.startRound()
	d.active = d.encounter
	return d
}

func (d *Director) startRound() {
	d.encounter = NewEncounter(d.cfg)
	d.gameOver = nil
	d.phase = PhasePlaying
	d.rounds++
	d.stats.Int(status.MetricRounds).Add(1)
}

// Update advances the presented scene; scenes are frozen while a flip runs
func (d *Director) Update(dt time.Duration) {
	d.stats.Float(status.MetricFrameMs).Set(float64(dt) / float64(time.Millisecond))
	if d.transition != nil {
		d.transition.Update(dt)
		if d.transition.Done() {
			d.active = d.transition.To()
			d.transition = nil
		}
		return
	}

	d.active.Update(dt)

	switch s := d.active.(type) {
	case *Encounter:
		outcome := s.Outcome()
		if outcome == OutcomeNone {
			return
		}
		kills := s.Session().MonstersDestroyed
		s.Close()
		d.gameOver = NewGameOver(d.cfg.Field, outcome == OutcomeWon, kills)
		d.active = d.gameOver
		d.stats.Int(status.MetricKills).Add(int64(kills))
		if outcome == OutcomeWon {
			d.phase = PhaseWon
			d.stats.Int(status.MetricWon).Add(1)
		} else {
			d.phase = PhaseLost
			d.stats.Int(status.MetricLost).Add(1)
		}
		d.logger.Printf("round %d %s with %d kills", d.rounds, outcome, kills)

	case *GameOver:
		if !s.Ready() {
			return
		}
		d.startRound()
		d.transition = NewTransition(s, d.encounter, parameter.FlipDuration)
	}
}

// TouchEnded forwards input to the presented scene; input during a flip is dropped
func (d *Director) TouchEnded(points []vmath.Vec2) {
	if d.transition != nil {
		return
	}
	d.active.TouchEnded(points)
}

// View returns the frame to draw
func (d *Director) View() View {
	if d.transition != nil {
		return d.transition.View()
	}
	return d.active.View()
}

// Phase returns the current state
func (d *Director) Phase() Phase {
	return d.phase
}

// Encounter returns the current or upcoming encounter
func (d *Director) Encounter() *Encounter {
	return d.encounter
}

// Transition returns the running flip, nil when idle
func (d *Director) Transition() *Transition {
	return d.transition
}

// Rounds returns how many encounters have been started
func (d *Director) Rounds() int {
	return d.rounds
}

// Stats returns play statistics across rounds
func (d *Director) Stats() *status.Registry {
	return d.stats
}
