package scene

import (
	"image/color"
	"time"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/vmath"
)

// Phase is the director's state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "playing"
	}
}

// Sprite is one drawable entity in scene coordinates, Y growing downward
type Sprite struct {
	Entity   core.Entity
	Kind     core.Kind
	Position vmath.Vec2 // Center
	Size     vmath.Vec2
}

// View is everything a renderer needs to draw one frame
type View struct {
	Field      vmath.Vec2
	Background color.RGBA
	Sprites    []Sprite
	Label      string // Centered message, empty while playing
	Kills      int

	// ScaleX squashes the frame horizontally around its center during a flip, 1 when idle
	ScaleX float64
}

// Scene is a screen the director can present
type Scene interface {
	Update(dt time.Duration)
	TouchEnded(points []vmath.Vec2)
	View() View
}
