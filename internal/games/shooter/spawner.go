package shooter

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// spawnEnemy places an enemy at a random X within the boundary, far ahead,
// flying toward the camera.
func (g *Game) spawnEnemy() ecs.Entity {
	sc := g.cfg.Spawner
	x := (g.rng.Float64()*2 - 1) * sc.BoundaryMax
	half := core.V3(sc.EnemySize, sc.EnemySize, sc.EnemySize)
	pos := core.V3(x, sc.EnemySize, sc.EnemyStartDepth)

	body := &engine.Body{
		Kind:     engine.BodyKinematic,
		Shape:    engine.BoxShape(half),
		Velocity: core.V3(0, 0, -g.difficulty.Speed(sc.EnemySpeed, g.score, g.ticks)),
	}
	return g.store.Spawn(KindEnemy, g.loadHandle(meshEnemy, pos, half, body))
}

// spawnBullet fires a bullet from the ship.
func (g *Game) spawnBullet() ecs.Entity {
	sc := g.cfg.Spawner
	half := core.V3(sc.BulletSize, sc.BulletSize, sc.BulletSize)
	pos := g.ship.Position().Add(core.V3(0, 0, sc.BulletDepthOffset))

	body := &engine.Body{
		Kind:              engine.BodyTrigger,
		Shape:             engine.BoxShape(half),
		Velocity:          g.bulletVelocity(),
		OnRemovedContacts: g.onBulletContact,
	}
	id := g.store.Spawn(KindBullet, g.loadHandle(meshBullet, pos, half, body))
	g.eng.PlaySound(g.cfg.Audio.Shoot, g.cfg.Audio.Volume)
	return id
}

// loadHandle loads a mesh for body. The mesh catalog is checked when the
// engine starts, so a failure here means the catalog changed underneath us
// and a bare node is used instead.
func (g *Game) loadHandle(path string, pos, half core.Vec3, body *engine.Body) Handle {
	mesh, err := g.eng.Meshes.Load(engine.MeshParams{Path: path, Position: pos, Size: half})
	if err != nil {
		g.eng.Warn("mesh load failed", "path", path, "err", err)
		node := engine.NewNode(path, pos)
		node.Size = half
		return Handle{Node: node, Body: body}
	}
	return Handle{Node: mesh.Node, Body: body, Mesh: mesh}
}
