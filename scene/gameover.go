package scene

import (
	"time"

	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/vmath"
)

// GameOver shows the round result and asks for a restart after a fixed delay
type GameOver struct {
	field   vmath.Vec2
	won     bool
	kills   int
	elapsed time.Duration
}

// NewGameOver creates the result screen
func NewGameOver(field vmath.Vec2, didWin bool, kills int) *GameOver {
	return &GameOver{field: field, won: didWin, kills: kills}
}

// Won reports which message is shown
func (g *GameOver) Won() bool {
	return g.won
}

// Message returns the label text
func (g *GameOver) Message() string {
	if g.won {
		return parameter.MessageWon
	}
	return parameter.MessageLost
}

// Update advances the delay
func (g *GameOver) Update(dt time.Duration) {
	g.elapsed += dt
}

// TouchEnded is ignored on the result screen
func (g *GameOver) TouchEnded([]vmath.Vec2) {}

// Ready reports whether the delay before restart has passed
func (g *GameOver) Ready() bool {
	return g.elapsed >= parameter.GameOverDelay
}

// View returns the frame to draw
func (g *GameOver) View() View {
	return View{
		Field:      g.field,
		Background: parameter.GameOverBackground,
		Label:      g.Message(),
		Kills:      g.kills,
		ScaleX:     1,
	}
}
