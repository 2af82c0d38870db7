package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shuriken/scene"
)

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	screen    tcell.Screen
	buffer    *Buffer
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator sized to the screen
func NewOrchestrator(screen tcell.Screen) *Orchestrator {
	w, h := screen.Size()
	return &Orchestrator{
		screen:    screen,
		buffer:    NewBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// NewDefaultOrchestrator registers the standard layers
func NewDefaultOrchestrator(screen tcell.Screen) *Orchestrator {
	o := NewOrchestrator(screen)
	o.Register(&BackgroundRenderer{}, PriorityBackground)
	o.Register(&SpriteRenderer{}, PriorityEntities)
	o.Register(&StatusRenderer{}, PriorityUI)
	o.Register(&LabelRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *Orchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// RenderFrame executes the pipeline: render all layers, flush with the view's flip scale, show
func (o *Orchestrator) RenderFrame(v scene.View) {
	for _, entry := range o.renderers {
		entry.renderer.Render(v, o.buffer)
	}
	o.buffer.Flush(o.screen, v.ScaleX)
}

// Buffer exposes the off-screen grid
func (o *Orchestrator) Buffer() *Buffer {
	return o.buffer
}
