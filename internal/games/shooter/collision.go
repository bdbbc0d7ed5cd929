package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// onShipContact handles an enemy leaving the ship's trigger volume: the enemy
// is destroyed and the ship takes the hit penalty.
func (g *Game) onShipContact(_, other *engine.Body, _ []engine.Contact) {
	if g.phase != PhasePlaying {
		return
	}
	id, ok := g.store.Lookup(other)
	if !ok {
		return
	}
	if kind, _, _ := g.store.Get(id); kind != KindEnemy {
		return
	}
	pos := other.Position
	if !g.store.Destroy(id) {
		return
	}

	g.score = max(g.score-g.cfg.Game.HitPenalty, 0)
	g.hits++
	g.eng.Particles.Burst(pos, g.cfg.Particles.BurstCount, core.ColorBrightRed)
	g.eng.PlaySound(g.cfg.Audio.Hit, g.cfg.Audio.Volume)
}

// onBulletContact handles a bullet and an enemy separating: both are
// destroyed and the kill is scored. When the pair still reports contact
// points the event came from a removal rather than a pass-through, and the
// collision policy decides whether it counts.
func (g *Game) onBulletContact(bullet, other *engine.Body, pairContacts []engine.Contact) {
	if g.phase != PhasePlaying {
		return
	}
	if g.cfg.Collision.SkipBulletHitWithPairContacts && len(pairContacts) > 0 {
		return
	}
	bulletID, ok := g.store.Lookup(bullet)
	if !ok {
		return
	}
	enemyID, ok := g.store.Lookup(other)
	if !ok {
		return
	}
	if kind, _, _ := g.store.Get(enemyID); kind != KindEnemy {
		return
	}
	pos := other.Position

	g.store.Destroy(bulletID)
	g.store.Destroy(enemyID)

	g.score += g.cfg.Game.KillPoints
	g.kills++
	g.eng.Particles.Burst(pos, g.cfg.Particles.BurstCount, core.ColorOrange)
	g.eng.PlaySound(g.cfg.Audio.Explosion, g.cfg.Audio.Volume)
}
