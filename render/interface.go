package render

import (
	"github.com/lixenwraith/shuriken/scene"
)

// Renderer draws one layer of a view into the buffer
type Renderer interface {
	Render(v scene.View, buf *Buffer)
}

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityEntities
	PriorityUI
	PriorityOverlay
)
