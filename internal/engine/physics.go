package engine

import (
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ShapeKind identifies a collision shape.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapePlane
)

// Shape is a collision shape. Boxes are axis aligned.
type Shape struct {
	Kind        ShapeKind
	HalfExtents core.Vec3 // Box only
	Normal      core.Vec3 // Plane only
	Distance    float64   // Plane only, offset along Normal
}

// BoxShape creates an axis-aligned box shape.
func BoxShape(halfExtents core.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// PlaneShape creates an infinite plane shape.
func PlaneShape(normal core.Vec3, distance float64) Shape {
	return Shape{Kind: ShapePlane, Normal: normal.Normalize(), Distance: distance}
}

// BodyKind selects how a body takes part in the simulation.
type BodyKind int

const (
	BodyStatic    BodyKind = iota // Never moves
	BodyRigid                     // Gravity and floor response
	BodyKinematic                 // Moves by its velocity, ignores forces
	BodyTrigger                   // Moves by its velocity, reports overlaps
)

func (k BodyKind) String() string {
	switch k {
	case BodyStatic:
		return "static"
	case BodyRigid:
		return "rigid"
	case BodyKinematic:
		return "kinematic"
	case BodyTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Contact is a single contact point between two bodies.
type Contact struct {
	Point  core.Vec3
	Normal core.Vec3
	Depth  float64
}

// ContactFunc is called with the trigger that owns the callback, the other
// body of the pair and the contact points the pair still had, if any.
type ContactFunc func(trigger, other *Body, pairContacts []Contact)

// Body is a physics body. Callbacks are only honored on trigger bodies.
type Body struct {
	Kind        BodyKind
	Shape       Shape
	Position    core.Vec3
	Velocity    core.Vec3
	Mass        float64
	Friction    float64
	Restitution float64

	// UserData is left untouched by the engine.
	UserData any

	OnAddedContacts   ContactFunc
	OnRemovedContacts ContactFunc

	world    *World
	overlaps []overlap
}

type overlap struct {
	other    *Body
	contacts []Contact
}

// InWorld reports whether the body is registered with a world.
func (b *Body) InWorld() bool { return b.world != nil }

// Overlapping returns the bodies a trigger currently overlaps, in the order
// the overlaps began.
func (b *Body) Overlapping() []*Body {
	out := make([]*Body, len(b.overlaps))
	for i, o := range b.overlaps {
		out[i] = o.other
	}
	return out
}

type contactEvent struct {
	trigger  *Body
	other    *Body
	contacts []Contact
	added    bool
	removal  bool // Raised by RemoveBody, delivered even though a body left
}

// World is a minimal dynamics world. Rigid bodies fall under gravity and
// bounce off static planes. Trigger bodies track overlaps with boxes and
// report them through their contact callbacks during Step.
//
// Callbacks run synchronously and may add or remove bodies. Events raised
// while another callback is running are queued and delivered before the
// outermost Step or RemoveBody returns.
type World struct {
	Gravity core.Vec3

	bodies      []*Body
	pending     []contactEvent
	dispatching bool
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity core.Vec3) *World {
	return &World{Gravity: gravity}
}

// Bodies returns the registered bodies in insertion order.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// AddBody registers a body. A body already in a world is left alone.
func (w *World) AddBody(b *Body) {
	if b.world != nil {
		return
	}
	b.world = w
	w.bodies = append(w.bodies, b)
}

// RemoveBody deregisters a body. Every overlap the body still took part in
// ends with a removed-contacts event carrying the pair's last contact points.
// It returns false if the body was not in this world.
func (w *World) RemoveBody(b *Body) bool {
	if b.world != w {
		return false
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil

	if b.Kind == BodyTrigger {
		for _, o := range b.overlaps {
			w.pending = append(w.pending, contactEvent{trigger: b, other: o.other, contacts: o.contacts, removal: true})
		}
		b.overlaps = nil
	} else {
		for _, t := range w.bodies {
			if t.Kind != BodyTrigger {
				continue
			}
			if o, ok := t.dropOverlap(b); ok {
				w.pending = append(w.pending, contactEvent{trigger: t, other: b, contacts: o.contacts, removal: true})
			}
		}
	}

	w.flush()
	return true
}

// maxSubsteps bounds how finely a single Step is split.
const maxSubsteps = 64

// Step advances the simulation by dt seconds and delivers contact events.
// The step is split so that no body moves more than half of the smallest box
// extent between two overlap checks, whatever the frame rate.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	n := w.substeps(dt)
	h := dt / float64(n)
	for i := 0; i < n; i++ {
		w.step(h)
	}
}

// substeps returns how many parts a step of dt is split into.
func (w *World) substeps(dt float64) int {
	travel, extent := 0.0, math.Inf(1)
	for _, b := range w.bodies {
		if b.Kind != BodyStatic {
			travel = math.Max(travel, b.Velocity.Len()*dt)
		}
		if b.Shape.Kind == ShapeBox {
			he := b.Shape.HalfExtents
			extent = math.Min(extent, math.Min(he.X, math.Min(he.Y, he.Z)))
		}
	}
	if travel == 0 || extent <= 0 || math.IsInf(extent, 1) {
		return 1
	}
	n := int(math.Ceil(2 * travel / extent))
	return max(1, min(n, maxSubsteps))
}

func (w *World) step(dt float64) {
	bodies := append([]*Body(nil), w.bodies...)
	for _, b := range bodies {
		switch b.Kind {
		case BodyRigid:
			b.Velocity = b.Velocity.Add(w.Gravity.Scale(dt))
			b.Position = b.Position.Add(b.Velocity.Scale(dt))
			w.resolvePlanes(b, dt)
		case BodyKinematic, BodyTrigger:
			b.Position = b.Position.Add(b.Velocity.Scale(dt))
		}
	}

	for _, t := range bodies {
		if t.Kind != BodyTrigger || t.Shape.Kind != ShapeBox {
			continue
		}
		w.updateOverlaps(t, bodies)
	}

	w.flush()
}

// updateOverlaps diffs the trigger's overlap set and queues events.
func (w *World) updateOverlaps(t *Body, bodies []*Body) {
	var current []overlap
	for _, b := range bodies {
		if b == t || b.Kind == BodyTrigger || b.Shape.Kind != ShapeBox {
			continue
		}
		if contacts := boxContacts(t, b); len(contacts) > 0 {
			current = append(current, overlap{other: b, contacts: contacts})
		}
	}

	for _, o := range t.overlaps {
		if !containsOverlap(current, o.other) {
			w.pending = append(w.pending, contactEvent{trigger: t, other: o.other})
		}
	}
	for _, o := range current {
		if !containsOverlap(t.overlaps, o.other) {
			w.pending = append(w.pending, contactEvent{trigger: t, other: o.other, contacts: o.contacts, added: true})
		}
	}
	t.overlaps = current
}

// flush delivers queued events unless a delivery is already in progress.
func (w *World) flush() {
	if w.dispatching {
		return
	}
	w.dispatching = true
	defer func() { w.dispatching = false }()

	for len(w.pending) > 0 {
		ev := w.pending[0]
		w.pending = w.pending[1:]

		// Overlap events for a body removed earlier in this delivery were
		// superseded by the removal's own event.
		if !ev.removal && (ev.trigger.world != w || ev.other.world != w) {
			continue
		}

		fn := ev.trigger.OnRemovedContacts
		if ev.added {
			fn = ev.trigger.OnAddedContacts
		}
		if fn != nil {
			fn(ev.trigger, ev.other, ev.contacts)
		}
	}
}

func (w *World) resolvePlanes(b *Body, dt float64) {
	if b.Shape.Kind != ShapeBox {
		return
	}
	for _, p := range w.bodies {
		if p.Kind != BodyStatic || p.Shape.Kind != ShapePlane {
			continue
		}
		n := p.Shape.Normal
		h := b.Shape.HalfExtents
		reach := math.Abs(h.X*n.X) + math.Abs(h.Y*n.Y) + math.Abs(h.Z*n.Z)
		dist := b.Position.Dot(n) - p.Shape.Distance - p.Position.Dot(n) - reach
		if dist >= 0 {
			continue
		}

		b.Position = b.Position.Sub(n.Scale(dist))
		vn := b.Velocity.Dot(n)
		if vn >= 0 {
			continue
		}
		restitution := math.Max(b.Restitution, p.Restitution)
		tangent := b.Velocity.Sub(n.Scale(vn))
		friction := core.ClampF(1-math.Max(b.Friction, p.Friction)*dt*10, 0, 1)
		bounce := -vn * restitution
		// Settle instead of jittering on the floor
		if bounce < w.Gravity.Len()*dt*2 {
			bounce = 0
		}
		b.Velocity = tangent.Scale(friction).Add(n.Scale(bounce))
	}
}

// boxContacts returns one contact at the centre of the overlap region, or nil
// if the boxes do not intersect.
func boxContacts(a, b *Body) []Contact {
	ha, hb := a.Shape.HalfExtents, b.Shape.HalfExtents
	d := b.Position.Sub(a.Position)

	ox := ha.X + hb.X - math.Abs(d.X)
	oy := ha.Y + hb.Y - math.Abs(d.Y)
	oz := ha.Z + hb.Z - math.Abs(d.Z)
	if ox <= 0 || oy <= 0 || oz <= 0 {
		return nil
	}

	depth, normal := ox, core.V3(math.Copysign(1, d.X), 0, 0)
	if oy < depth {
		depth, normal = oy, core.V3(0, math.Copysign(1, d.Y), 0)
	}
	if oz < depth {
		depth, normal = oz, core.V3(0, 0, math.Copysign(1, d.Z))
	}

	return []Contact{{
		Point:  a.Position.Add(d.Scale(0.5)),
		Normal: normal,
		Depth:  depth,
	}}
}

func (b *Body) dropOverlap(other *Body) (overlap, bool) {
	for i, o := range b.overlaps {
		if o.other == other {
			b.overlaps = append(b.overlaps[:i], b.overlaps[i+1:]...)
			return o, true
		}
	}
	return overlap{}, false
}

func containsOverlap(list []overlap, b *Body) bool {
	for _, o := range list {
		if o.other == b {
			return true
		}
	}
	return false
}
