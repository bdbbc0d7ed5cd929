package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// Build selects which parts of the game are active. Later builds switch on
// everything earlier builds have.
type Build struct {
	ID          string
	Title       string
	Description string

	FallingBox bool // Rigid box dropped onto the floor
	HelloText  bool // Static HUD greeting
	Enemies    bool // Spawner, enemy motion and boundary removal
	Ship       bool // Player ship and camera follow
	Bullets    bool // Firing, bullet motion and collision response
	Phases     bool // Menu, timed round and score screen
}

// Build identifiers.
const (
	BuildPhysics = "shooter_physics"
	BuildEnemies = "shooter_enemies"
	BuildBullets = "shooter_bullets"
	BuildFull    = "shooter"
)

// Builds returns every build in tutorial order.
func Builds() []Build {
	return []Build{
		{
			ID:          BuildPhysics,
			Title:       "Shooter 1: Physics",
			Description: "Camera, floor and a falling box",
			FallingBox:  true,
			HelloText:   true,
		},
		{
			ID:          BuildEnemies,
			Title:       "Shooter 2: Enemies",
			Description: "Enemies spawn and fly past the camera",
			Enemies:     true,
		},
		{
			ID:          BuildBullets,
			Title:       "Shooter 3: Bullets",
			Description: "Steer the ship and shoot enemies down",
			Enemies:     true,
			Ship:        true,
			Bullets:     true,
		},
		{
			ID:          BuildFull,
			Title:       "Shooter",
			Description: "Timed rounds with score",
			Enemies:     true,
			Ship:        true,
			Bullets:     true,
			Phases:      true,
		},
	}
}

// BuildByID returns the build with the given ID.
func BuildByID(id string) (Build, bool) {
	for _, b := range Builds() {
		if b.ID == id {
			return b, true
		}
	}
	return Build{}, false
}

// Mesh paths.
const (
	meshCube   = "models/cube.dae"
	meshEnemy  = "models/enemy.dae"
	meshShip   = "models/ship.dae"
	meshBullet = "models/bullet.dae"
)

var materials = []engine.Material{
	{Name: "crate", Glyph: '▓', Color: core.ColorOrange},
	{Name: "enemy", Glyph: '█', Color: core.ColorBrightMagenta},
	{Name: "ship", Glyph: '▲', Color: core.ColorBrightCyan},
	{Name: "bullet", Glyph: '|', Color: core.ColorBrightYellow},
}

var meshes = map[string]string{
	meshCube:   "crate",
	meshEnemy:  "enemy",
	meshShip:   "ship",
	meshBullet: "bullet",
}

// addFloor registers the static floor plane.
func (g *Game) addFloor() {
	node := engine.NewNode("Floor1", core.Vec3{})
	node.Glyph = 0
	body := &engine.Body{
		Kind:        engine.BodyStatic,
		Shape:       engine.PlaneShape(core.V3(0, 1, 0), 0),
		Friction:    g.cfg.Physics.FloorFriction,
		Restitution: g.cfg.Physics.FloorRestitution,
	}
	g.store.Spawn(KindProp, Handle{Node: node, Body: body})
}

// addBox drops a rigid box onto the floor.
func (g *Game) addBox() error {
	pos := core.V3(0, g.cfg.Physics.BoxStartHeight, 0)
	half := core.V3(0.5, 0.5, 0.5)
	mesh, err := g.eng.Meshes.Load(engine.MeshParams{Path: meshCube, Name: "Box", Position: pos, Size: half})
	if err != nil {
		return err
	}
	body := &engine.Body{
		Kind:        engine.BodyRigid,
		Shape:       engine.BoxShape(half),
		Mass:        g.cfg.Physics.BoxMass,
		Friction:    0.1,
		Restitution: g.cfg.Physics.BoxRestitution,
	}
	g.box = Handle{Node: mesh.Node, Body: body, Mesh: mesh}
	g.store.Spawn(KindProp, g.box)
	return nil
}

// addShip creates the player ship as a trigger that responds to enemies.
func (g *Game) addShip() error {
	g.ship = NewShip(g.cfg.Ship, g.cfg.Spawner.BoundaryMax)
	size := g.cfg.Ship.Size
	half := core.V3(size, size/2, size)
	mesh, err := g.eng.Meshes.Load(engine.MeshParams{Path: meshShip, Name: "Ship", Position: g.ship.Position(), Size: half})
	if err != nil {
		return err
	}
	body := &engine.Body{
		Kind:              engine.BodyTrigger,
		Shape:             engine.BoxShape(half),
		OnRemovedContacts: g.onShipContact,
	}
	g.ship.Handle = Handle{Node: mesh.Node, Body: body, Mesh: mesh}
	g.eng.Physics.AddNode(mesh.Node, body)
	return nil
}
