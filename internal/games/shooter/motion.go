package shooter

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// referenceRate is the frame rate BulletStep is expressed at.
const referenceRate = 60

// bulletVelocity is the forward speed of a bullet in units per second. In
// frames mode a bullet covers BulletStep every tick; otherwise BulletStep is
// the distance per tick at the reference rate.
func (g *Game) bulletVelocity() core.Vec3 {
	rate := referenceRate
	if g.cfg.Spawner.TimerMode == config.TimerFrames {
		rate = g.tickRate()
	}
	return core.V3(0, 0, g.cfg.Spawner.BulletStep*float64(rate))
}

// sweepBoundaries destroys enemies that passed the camera and bullets that
// left the field. It returns how many entities were removed.
func (g *Game) sweepBoundaries() int {
	var out []ecs.Entity
	for _, id := range g.store.List(KindEnemy).IDs() {
		if _, h, ok := g.store.Get(id); ok && h.Position().Z < g.cfg.Spawner.DespawnDepth {
			out = append(out, id)
		}
	}
	for _, id := range g.store.List(KindBullet).IDs() {
		if _, h, ok := g.store.Get(id); ok && h.Position().Z > g.cfg.Spawner.BulletDespawnDepth {
			out = append(out, id)
		}
	}

	removed := 0
	for _, id := range out {
		if g.store.Destroy(id) {
			removed++
		}
	}
	return removed
}
