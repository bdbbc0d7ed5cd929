package shooter

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// Kind classifies an entity.
type Kind int

const (
	KindProp Kind = iota
	KindEnemy
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindProp:
		return "prop"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Handle pairs a scene node with its physics body and the mesh it came from.
// The node and body are owned by the engine.
type Handle struct {
	Node *engine.Node
	Body *engine.Body
	Mesh *engine.Mesh
}

// Position returns the body position.
func (h Handle) Position() core.Vec3 {
	return h.Body.Position
}

// SetPosition moves node and body together.
func (h Handle) SetPosition(p core.Vec3) {
	h.Node.SetPosition(p)
	h.Body.Position = p
}

// record is the component stored for every entity.
type record struct {
	Kind   Kind
	Handle Handle
}

// EntityList is an insertion-ordered list of entity IDs.
type EntityList struct {
	ids []ecs.Entity
}

// Append adds an ID at the end.
func (l *EntityList) Append(id ecs.Entity) {
	l.ids = append(l.ids, id)
}

// Remove deletes the first occurrence of id. It returns false if id is not
// in the list.
func (l *EntityList) Remove(id ecs.Entity) bool {
	for i, e := range l.ids {
		if e == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether id is in the list.
func (l *EntityList) Contains(id ecs.Entity) bool {
	for _, e := range l.ids {
		if e == id {
			return true
		}
	}
	return false
}

// Len returns the number of IDs.
func (l *EntityList) Len() int {
	return len(l.ids)
}

// IDs returns a snapshot of the list, safe to iterate while destroying.
func (l *EntityList) IDs() []ecs.Entity {
	return append([]ecs.Entity(nil), l.ids...)
}

// Store owns every spawned entity. Spawn and Destroy are the only ways an
// entity enters or leaves the game, and they keep the entity lists, the ECS
// world, the scene and the physics world in step.
type Store struct {
	world   ecs.World
	records *ecs.Map1[record]
	physics *engine.PhysicsManager
	lists   map[Kind]*EntityList
}

// NewStore creates an empty store that registers entities with physics.
func NewStore(physics *engine.PhysicsManager) *Store {
	s := &Store{
		world:   ecs.NewWorld(),
		physics: physics,
		lists: map[Kind]*EntityList{
			KindProp:   {},
			KindEnemy:  {},
			KindBullet: {},
		},
	}
	s.records = ecs.NewMap1[record](&s.world)
	return s
}

// Spawn registers the handle's node and body and appends a new ID to the
// list for kind. The body's UserData is set to the ID.
func (s *Store) Spawn(kind Kind, h Handle) ecs.Entity {
	id := s.records.NewEntity(&record{Kind: kind, Handle: h})
	h.Body.UserData = id
	s.physics.AddNode(h.Node, h.Body)
	s.lists[kind].Append(id)
	return id
}

// Destroy removes an entity from its list, the ECS world, the scene and the
// physics world. Destroying an unknown or already destroyed ID does nothing
// and returns false.
//
// Bookkeeping finishes before the physics removal, so contact callbacks it
// triggers already see the entity as gone.
func (s *Store) Destroy(id ecs.Entity) bool {
	if !s.world.Alive(id) {
		return false
	}
	rec := *s.records.Get(id)
	s.lists[rec.Kind].Remove(id)
	s.world.RemoveEntity(id)
	s.physics.RemoveNode(rec.Handle.Node)
	return true
}

// DestroyAll destroys every entity of kind and returns how many were removed.
func (s *Store) DestroyAll(kind Kind) int {
	n := 0
	for _, id := range s.lists[kind].IDs() {
		if s.Destroy(id) {
			n++
		}
	}
	return n
}

// Get returns the kind and handle of a live entity.
func (s *Store) Get(id ecs.Entity) (Kind, Handle, bool) {
	if !s.world.Alive(id) {
		return 0, Handle{}, false
	}
	rec := s.records.Get(id)
	return rec.Kind, rec.Handle, true
}

// Lookup maps a physics body back to its live entity.
func (s *Store) Lookup(body *engine.Body) (ecs.Entity, bool) {
	if body == nil {
		return ecs.Entity{}, false
	}
	id, ok := body.UserData.(ecs.Entity)
	if !ok || !s.world.Alive(id) {
		return ecs.Entity{}, false
	}
	return id, true
}

// List returns the list for kind.
func (s *Store) List(kind Kind) *EntityList {
	return s.lists[kind]
}

// Len returns the number of live entities of kind.
func (s *Store) Len(kind Kind) int {
	return s.lists[kind].Len()
}
