package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type contactLog struct {
	added   []*Body
	removed []*Body
	counts  []int
}

func (l *contactLog) attach(trigger *Body) {
	trigger.OnAddedContacts = func(_, other *Body, _ []Contact) {
		l.added = append(l.added, other)
	}
	trigger.OnRemovedContacts = func(_, other *Body, pairContacts []Contact) {
		l.removed = append(l.removed, other)
		l.counts = append(l.counts, len(pairContacts))
	}
}

func newBox(kind BodyKind, pos core.Vec3, half float64) *Body {
	return &Body{Kind: kind, Shape: BoxShape(core.V3(half, half, half)), Position: pos}
}

func TestRigidBodyRestsOnFloor(t *testing.T) {
	w := NewWorld(core.V3(0, -9.8, 0))
	floor := &Body{Kind: BodyStatic, Shape: PlaneShape(core.V3(0, 1, 0), 0), Restitution: 0.3, Friction: 0.5}
	box := newBox(BodyRigid, core.V3(0, 7, 0), 0.5)
	box.Restitution = 0.2
	w.AddBody(floor)
	w.AddBody(box)

	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60)
	}

	if math.Abs(box.Position.Y-0.5) > 0.05 {
		t.Errorf("box Y = %v, expected resting at 0.5", box.Position.Y)
	}
	if box.Position.Y < 0.5-1e-9 {
		t.Errorf("box sank below the floor: %v", box.Position.Y)
	}
}

func TestKinematicBodyMovesByVelocity(t *testing.T) {
	w := NewWorld(core.V3(0, -9.8, 0))
	b := newBox(BodyKinematic, core.V3(0, 1, 10), 0.5)
	b.Velocity = core.V3(0, 0, -2)
	w.AddBody(b)

	w.Step(0.5)

	if b.Position != core.V3(0, 1, 9) {
		t.Errorf("Position = %v, expected {0 1 9}", b.Position)
	}
}

func TestTriggerOverlapEvents(t *testing.T) {
	w := NewWorld(core.Vec3{})
	trigger := newBox(BodyTrigger, core.V3(0, 0, 0), 0.5)
	enemy := newBox(BodyKinematic, core.V3(0, 0, 1.5), 0.5)
	enemy.Velocity = core.V3(0, 0, -1)
	var log contactLog
	log.attach(trigger)
	w.AddBody(trigger)
	w.AddBody(enemy)

	// Enters overlap after the first step, leaves after z < -1
	for i := 0; i < 4; i++ {
		w.Step(1)
	}

	if len(log.added) != 1 || log.added[0] != enemy {
		t.Fatalf("added = %v, expected exactly the enemy", log.added)
	}
	if len(log.removed) != 1 || log.removed[0] != enemy {
		t.Fatalf("removed = %v, expected exactly the enemy", log.removed)
	}
	if log.counts[0] != 0 {
		t.Errorf("separation pairContacts = %d, expected 0", log.counts[0])
	}
}

func TestRemoveBodyWhileOverlapping(t *testing.T) {
	w := NewWorld(core.Vec3{})
	trigger := newBox(BodyTrigger, core.V3(0, 0, 0), 0.5)
	enemy := newBox(BodyKinematic, core.V3(0, 0, 0.5), 0.5)
	var log contactLog
	log.attach(trigger)
	w.AddBody(trigger)
	w.AddBody(enemy)
	w.Step(0.1)

	if !w.RemoveBody(enemy) {
		t.Fatal("RemoveBody() = false, expected true")
	}
	if w.RemoveBody(enemy) {
		t.Error("second RemoveBody() = true, expected false")
	}

	if len(log.removed) != 1 {
		t.Fatalf("removed events = %d, expected 1", len(log.removed))
	}
	if log.counts[0] == 0 {
		t.Error("removal while overlapping should report pair contacts")
	}
	if len(trigger.Overlapping()) != 0 {
		t.Errorf("trigger still overlaps %d bodies", len(trigger.Overlapping()))
	}
}

func TestCallbackRemovalIsQueued(t *testing.T) {
	w := NewWorld(core.Vec3{})
	trigger := newBox(BodyTrigger, core.V3(0, 0, 0), 0.5)
	a := newBox(BodyKinematic, core.V3(0, 0, 0.2), 0.5)
	b := newBox(BodyKinematic, core.V3(0, 0, -0.2), 0.5)
	w.AddBody(trigger)
	w.AddBody(a)
	w.AddBody(b)

	var order []string
	trigger.OnAddedContacts = func(tr, other *Body, _ []Contact) {
		order = append(order, "added")
		// Removing the trigger from inside a callback must not re-enter
		w.RemoveBody(tr)
		order = append(order, "returned")
	}
	trigger.OnRemovedContacts = func(_, _ *Body, pairContacts []Contact) {
		if len(pairContacts) == 0 {
			t.Error("removal events should carry pair contacts")
		}
		order = append(order, "removed")
	}

	w.Step(0.1)

	expected := []string{"added", "returned", "removed", "removed"}
	if len(order) != len(expected) {
		t.Fatalf("order = %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
	if trigger.InWorld() {
		t.Error("trigger should have left the world")
	}
}

func TestTriggersIgnoreEachOther(t *testing.T) {
	w := NewWorld(core.Vec3{})
	a := newBox(BodyTrigger, core.V3(0, 0, 0), 0.5)
	b := newBox(BodyTrigger, core.V3(0, 0, 0), 0.5)
	var log contactLog
	log.attach(a)
	w.AddBody(a)
	w.AddBody(b)
	w.Step(0.1)

	if len(log.added) != 0 {
		t.Errorf("trigger/trigger overlaps reported: %d", len(log.added))
	}
}

func TestFastTriggerCrossesBoxInOneStep(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{"60 fps", 1.0 / 60},
		{"20 fps", 1.0 / 20},
		{"10 fps", 1.0 / 10},
		{"2 fps", 1.0 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(core.Vec3{})
			bullet := newBox(BodyTrigger, core.V3(0, 0, 0), 0.25)
			bullet.Velocity = core.V3(0, 0, 60)
			enemy := newBox(BodyKinematic, core.V3(0, 0, 4), 1)
			enemy.Velocity = core.V3(0, 0, -12)
			var log contactLog
			log.attach(bullet)
			w.AddBody(bullet)
			w.AddBody(enemy)

			for i := 0; i < 10 && len(log.removed) == 0; i++ {
				w.Step(tc.dt)
			}

			if len(log.added) != 1 {
				t.Fatalf("added events = %d, expected 1", len(log.added))
			}
			if len(log.removed) != 1 || log.counts[0] != 0 {
				t.Errorf("removed = %d with %v contacts, expected one separation", len(log.removed), log.counts)
			}
		})
	}
}

func TestSubstepsFollowTravel(t *testing.T) {
	w := NewWorld(core.Vec3{})
	b := newBox(BodyTrigger, core.V3(0, 0, 0), 0.25)
	w.AddBody(b)
	if n := w.substeps(1); n != 1 {
		t.Errorf("substeps() at rest = %d, expected 1", n)
	}

	b.Velocity = core.V3(0, 0, 1)
	if n := w.substeps(1); n != 8 {
		t.Errorf("substeps() = %d, expected 8", n)
	}

	b.Velocity = core.V3(0, 0, 1000)
	if n := w.substeps(1); n != maxSubsteps {
		t.Errorf("substeps() = %d, expected %d", n, maxSubsteps)
	}
}
