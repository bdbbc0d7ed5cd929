package engine

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Node is a scene graph node. Only root nodes are used by the games here, so
// the local transform is also the world transform.
type Node struct {
	Name    string
	Size    core.Vec3 // Half extents, used by debug drawing
	Glyph   rune
	Color   core.Color
	Dynamic bool

	position core.Vec3
	enabled  bool
	scene    *Scene
}

// NewNode creates an enabled node at the given position.
func NewNode(name string, position core.Vec3) *Node {
	return &Node{Name: name, position: position, enabled: true, Glyph: '#'}
}

// Position returns the node's local position.
func (n *Node) Position() core.Vec3 { return n.position }

// SetPosition moves the node.
func (n *Node) SetPosition(p core.Vec3) { n.position = p }

// Enable makes the node visible.
func (n *Node) Enable() { n.enabled = true }

// Disable hides the node without removing it from the scene.
func (n *Node) Disable() { n.enabled = false }

// Enabled reports whether the node is drawn.
func (n *Node) Enabled() bool { return n.enabled }

// InScene reports whether the node is currently attached to a scene.
func (n *Node) InScene() bool { return n.scene != nil }

// Scene is a flat list of root nodes kept in insertion order.
type Scene struct {
	roots []*Node
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// AddRootNode attaches a node to the scene. Adding a node twice is a no-op.
func (s *Scene) AddRootNode(n *Node) {
	if n.scene == s {
		return
	}
	n.scene = s
	s.roots = append(s.roots, n)
}

// RemoveRootNode detaches a node. It returns false if the node was not attached.
func (s *Scene) RemoveRootNode(n *Node) bool {
	for i, r := range s.roots {
		if r == n {
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			n.scene = nil
			return true
		}
	}
	return false
}

// FindNode returns the first root node with the given name.
func (s *Scene) FindNode(name string) *Node {
	for _, r := range s.roots {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// RootNodes returns the attached nodes in insertion order.
func (s *Scene) RootNodes() []*Node {
	return s.roots
}

// Clear detaches every node.
func (s *Scene) Clear() {
	for _, r := range s.roots {
		r.scene = nil
	}
	s.roots = s.roots[:0]
}
