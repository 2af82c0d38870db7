// Package input translates terminal events into game intents
package input

import "github.com/lixenwraith/shuriken/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Throws
	IntentTouch // Left button released over a cell
	IntentFire  // Space: throw along the player's row
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle-mute"
	case IntentResize:
		return "resize"
	case IntentTouch:
		return "touch"
	case IntentFire:
		return "fire"
	default:
		return "none"
	}
}

// Intent is one translated input event
type Intent struct {
	Type IntentType

	// Point is the scene point of a touch, set for IntentTouch
	Point vmath.Vec2

	// Width and Height are the new screen size, set for IntentResize
	Width, Height int
}
