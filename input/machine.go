package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shuriken/render"
)

// Machine turns raw screen events into intents
// A touch ends on the button release that follows a press, as on a touch screen
type Machine struct {
	keys    *KeyTable
	pressed bool
}

// NewMachine creates a machine with the given bindings; nil uses the defaults
func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys}
}

// Process translates one event
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: m.keys.Lookup(ev)}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down {
			m.pressed = true
			return Intent{}
		}
		if !m.pressed {
			return Intent{}
		}
		m.pressed = false
		x, y := ev.Position()
		return Intent{Type: IntentTouch, Point: render.CellCenter(x, y)}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}
