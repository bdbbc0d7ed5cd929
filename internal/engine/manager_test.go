package engine

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestPhysicsManagerDualRegistration(t *testing.T) {
	scene := NewScene()
	world := NewWorld(core.Vec3{})
	m := NewPhysicsManager(scene, world)

	node := NewNode("enemy", core.V3(1, 2, 3))
	body := newBox(BodyKinematic, core.Vec3{}, 0.5)
	m.AddNode(node, body)

	if !node.InScene() || !body.InWorld() {
		t.Fatal("AddNode should register both node and body")
	}
	if body.Position != core.V3(1, 2, 3) {
		t.Errorf("body Position = %v, expected the node position", body.Position)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", m.Len())
	}

	if !m.RemoveNode(node) {
		t.Fatal("RemoveNode() = false, expected true")
	}
	if node.InScene() || body.InWorld() {
		t.Error("RemoveNode should deregister both node and body")
	}
	if m.RemoveNode(node) {
		t.Error("second RemoveNode() = true, expected false")
	}
	if len(scene.RootNodes()) != 0 || len(world.Bodies()) != 0 {
		t.Errorf("scene=%d world=%d, expected both empty", len(scene.RootNodes()), len(world.Bodies()))
	}
}

func TestPhysicsManagerUpdateCopiesPositions(t *testing.T) {
	scene := NewScene()
	world := NewWorld(core.Vec3{})
	m := NewPhysicsManager(scene, world)

	node := NewNode("enemy", core.V3(0, 0, 10))
	body := newBox(BodyKinematic, core.Vec3{}, 0.5)
	body.Velocity = core.V3(0, 0, -4)
	m.AddNode(node, body)

	world.Step(0.5)
	m.Update()

	if node.Position() != core.V3(0, 0, 8) {
		t.Errorf("node Position() = %v, expected {0 0 8}", node.Position())
	}
}

func TestSceneFindAndRemove(t *testing.T) {
	s := NewScene()
	a := NewNode("a", core.Vec3{})
	b := NewNode("b", core.Vec3{})
	s.AddRootNode(a)
	s.AddRootNode(b)
	s.AddRootNode(a)

	if len(s.RootNodes()) != 2 {
		t.Fatalf("RootNodes() = %d, expected 2", len(s.RootNodes()))
	}
	if s.FindNode("b") != b {
		t.Error("FindNode(b) did not return b")
	}
	if !s.RemoveRootNode(a) || s.RemoveRootNode(a) {
		t.Error("RemoveRootNode should succeed once")
	}
	if s.FindNode("a") != nil {
		t.Error("removed node still found")
	}
}
