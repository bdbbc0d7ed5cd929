package engine

// PhysicsManager pairs scene nodes with physics bodies so that both are
// registered and deregistered together.
type PhysicsManager struct {
	scene *Scene
	world *World

	nodes  []*Node
	bodies map[*Node]*Body
}

// NewPhysicsManager creates a manager over a scene and a world.
func NewPhysicsManager(scene *Scene, world *World) *PhysicsManager {
	return &PhysicsManager{
		scene:  scene,
		world:  world,
		bodies: make(map[*Node]*Body),
	}
}

// AddNode adds the node to the scene and the body to the world.
func (m *PhysicsManager) AddNode(node *Node, body *Body) {
	if _, ok := m.bodies[node]; ok {
		return
	}
	body.Position = node.Position()
	m.nodes = append(m.nodes, node)
	m.bodies[node] = body
	m.scene.AddRootNode(node)
	m.world.AddBody(body)
}

// RemoveNode removes the node from the scene and its body from the world.
// It returns false if the node was not managed. Contact callbacks raised by
// the body removal run after the node has already left the scene.
func (m *PhysicsManager) RemoveNode(node *Node) bool {
	body, ok := m.bodies[node]
	if !ok {
		return false
	}
	delete(m.bodies, node)
	for i, n := range m.nodes {
		if n == node {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	m.scene.RemoveRootNode(node)
	m.world.RemoveBody(body)
	return true
}

// Update copies body positions onto their nodes.
func (m *PhysicsManager) Update() {
	for _, n := range m.nodes {
		b := m.bodies[n]
		if b.Kind != BodyStatic {
			n.SetPosition(b.Position)
		}
	}
}

// Body returns the body paired with a node, or nil.
func (m *PhysicsManager) Body(node *Node) *Body {
	return m.bodies[node]
}

// Nodes returns the managed nodes in insertion order.
func (m *PhysicsManager) Nodes() []*Node {
	return m.nodes
}

// Len returns the number of managed pairs.
func (m *PhysicsManager) Len() int {
	return len(m.nodes)
}
