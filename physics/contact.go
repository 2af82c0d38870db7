package physics

import (
	"github.com/lixenwraith/shuriken/component"
	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/vmath"
)

// Contact is an unordered pair of touching bodies
// A always has the lower category value; equal categories order by entity ID
type Contact struct {
	A, B       core.Entity
	CatA, CatB core.Category
}

// ShouldReport applies the category/contact mask filter in both directions
func ShouldReport(a, b component.BodyComponent) bool {
	return a.Category&b.ContactMask != 0 || b.Category&a.ContactMask != 0
}

// NewContact builds a normalized contact
func NewContact(a core.Entity, catA core.Category, b core.Entity, catB core.Category) Contact {
	if catB < catA || (catB == catA && b < a) {
		a, b = b, a
		catA, catB = catB, catA
	}
	return Contact{A: a, B: b, CatA: catA, CatB: catB}
}

// Sweep reports whether a box of half-extent h moving from p0 to p1 enters the
// interior of the box centered on the origin with half-extent r
// Slab test on the segment against the box grown by h; grazing an edge is a miss
func Sweep(p0, p1, h, r vmath.Vec2) bool {
	ext := h.Add(r)
	d := p1.Sub(p0)
	tmin, tmax := 0.0, 1.0

	axes := [2][3]float64{
		{p0.X, d.X, ext.X},
		{p0.Y, d.Y, ext.Y},
	}
	for _, a := range axes {
		p, dp, e := a[0], a[1], a[2]
		if dp == 0 {
			if p <= -e || p >= e {
				return false
			}
			continue
		}
		t1 := (-e - p) / dp
		t2 := (e - p) / dp
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin >= tmax {
			return false
		}
	}
	return true
}

// ContactWorld detects overlapping bodies each tick
type ContactWorld struct {
	bodies []trackedBody
}

type trackedBody struct {
	entity core.Entity
	body   component.BodyComponent
	from   vmath.Vec2 // Previous for precise bodies, otherwise Position
	to     vmath.Vec2
}

// NewContactWorld creates a contact detector
func NewContactWorld() *ContactWorld {
	return &ContactWorld{}
}

// Step returns every filtered pair of bodies whose shapes intersect during the last step
// Precise bodies are swept along Previous to Position; others are tested where they stand
// Each pair appears at most once per call; order follows body insertion order
func (cw *ContactWorld) Step(w *engine.World) []Contact {
	cw.bodies = cw.bodies[:0]
	for _, e := range w.Bodies.All() {
		body, _ := w.Bodies.Get(e)
		t, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		from := t.Position
		if body.Precise {
			from = t.Previous
		}
		cw.bodies = append(cw.bodies, trackedBody{entity: e, body: body, from: from, to: t.Position})
	}

	var contacts []Contact
	for i := 0; i < len(cw.bodies); i++ {
		a := cw.bodies[i]
		for j := i + 1; j < len(cw.bodies); j++ {
			b := cw.bodies[j]
			if !ShouldReport(a.body, b.body) || !intersects(a, b) {
				continue
			}
			contacts = append(contacts, NewContact(a.entity, a.body.Category, b.entity, b.body.Category))
		}
	}
	return contacts
}

// intersects sweeps a relative to b, so both bodies may move
func intersects(a, b trackedBody) bool {
	return Sweep(a.from.Sub(b.from), a.to.Sub(b.to), a.body.Size.Scale(0.5), b.body.Size.Scale(0.5))
}
