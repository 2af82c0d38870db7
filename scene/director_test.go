package scene

import (
	"testing"
	"time"

	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/status"
	"github.com/lixenwraith/shuriken/vmath"
)

func TestSessionFirstOutcomeWins(t *testing.T) {
	s := NewSession()
	if !s.Decide(false) {
		t.Fatal("Expected first decision to be recorded")
	}
	if s.Decide(true) {
		t.Error("Expected second decision to be ignored")
	}
	if s.Outcome() != OutcomeLost {
		t.Errorf("Expected lost, got %v", s.Outcome())
	}
	if NewSession().RoundID == s.RoundID {
		t.Error("Expected distinct round IDs")
	}
}

func TestGameOverMessages(t *testing.T) {
	field := vmath.V2(100, 100)
	if got := NewGameOver(field, true, 11).View().Label; got != "You won!" {
		t.Errorf("Expected win message, got %q", got)
	}
	lost := NewGameOver(field, false, 3).View()
	if lost.Label != "You Lose :[" {
		t.Errorf("Expected lose message, got %q", lost.Label)
	}
	if lost.Background != parameter.GameOverBackground {
		t.Errorf("Expected purple background, got %v", lost.Background)
	}
}

func TestTransitionProgress(t *testing.T) {
	from := NewGameOver(vmath.V2(10, 10), true, 0)
	to := NewGameOver(vmath.V2(10, 10), false, 0)
	tr := NewTransition(from, to, 500*time.Millisecond)

	tr.Update(125 * time.Millisecond)
	v := tr.View()
	if tr.Progress() != 0.25 || v.Label != parameter.MessageWon || v.ScaleX != 0.5 {
		t.Errorf("Expected outgoing side at half width, got p=%f label=%q scale=%f", tr.Progress(), v.Label, v.ScaleX)
	}

	tr.Update(250 * time.Millisecond)
	v = tr.View()
	if v.Label != parameter.MessageLost || v.ScaleX != 0.5 {
		t.Errorf("Expected incoming side at half width, got label=%q scale=%f", v.Label, v.ScaleX)
	}

	tr.Update(time.Second)
	if !tr.Done() || tr.Progress() != 1 {
		t.Errorf("Expected completion clamped to 1, got %f", tr.Progress())
	}
}

func TestDirectorLossRestartsFresh(t *testing.T) {
	d := NewDirector(testConfig(nil, nil))
	first := d.Encounter()
	firstID := first.Session().RoundID

	for i := 0; i < 600 && d.Phase() == PhasePlaying; i++ {
		d.Update(parameter.FrameUpdateInterval)
	}
	if d.Phase() != PhaseLost {
		t.Fatalf("Expected lost phase, got %v", d.Phase())
	}
	if v := d.View(); v.Label != parameter.MessageLost {
		t.Errorf("Expected lose label, got %q", v.Label)
	}

	d.Update(parameter.GameOverDelay - time.Millisecond)
	if d.Transition() != nil {
		t.Fatal("Expected no flip before the delay")
	}
	d.Update(time.Millisecond)
	if d.Transition() == nil {
		t.Fatal("Expected flip after the delay")
	}
	if d.Rounds() != 2 {
		t.Errorf("Expected second round prepared, got %d", d.Rounds())
	}

	d.Update(parameter.FlipDuration)
	if d.Transition() != nil {
		t.Fatal("Expected flip finished")
	}
	if d.Phase() != PhasePlaying {
		t.Errorf("Expected playing phase, got %v", d.Phase())
	}

	next := d.Encounter()
	if next == first || next.Session().RoundID == firstID {
		t.Error("Expected a new encounter with a new round ID")
	}
	if next.Session().MonstersDestroyed != 0 || next.World().Monsters.Count() != 0 {
		t.Errorf("Expected no residual state, got kills=%d monsters=%d",
			next.Session().MonstersDestroyed, next.World().Monsters.Count())
	}
	if first.World().EntityCount() != 0 {
		t.Errorf("Expected finished encounter torn down, got %d entities", first.World().EntityCount())
	}

	stats := d.Stats()
	if stats.Int(status.MetricLost).Load() != 1 || stats.Int(status.MetricRounds).Load() != 2 {
		t.Errorf("Expected 1 loss over 2 rounds, got %s", stats)
	}
}

func TestDirectorWinShowsWonScreen(t *testing.T) {
	d := NewDirector(testConfig(nil, nil))
	for i := 0; i < parameter.WinThreshold+1; i++ {
		addPair(d.Encounter(), vmath.V2(300, 10+float64(i)*12))
	}
	d.Update(0)

	if d.Phase() != PhaseWon {
		t.Fatalf("Expected won phase, got %v", d.Phase())
	}
	v := d.View()
	if v.Label != parameter.MessageWon || v.Kills != parameter.WinThreshold+1 {
		t.Errorf("Expected won screen with %d kills, got %q %d", parameter.WinThreshold+1, v.Label, v.Kills)
	}

	if got := d.Stats().Int(status.MetricKills).Load(); got != int64(parameter.WinThreshold+1) {
		t.Errorf("Expected %d kills recorded, got %d", parameter.WinThreshold+1, got)
	}

	// Input on the result screen is ignored
	d.TouchEnded([]vmath.Vec2{vmath.V2(400, 100)})
	if d.Phase() != PhaseWon {
		t.Errorf("Expected phase unchanged, got %v", d.Phase())
	}
}
