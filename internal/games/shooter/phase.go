package shooter

// Phase is the round state of the full game.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// updatePhase runs the menu -> playing -> gameOver -> playing cycle.
// dt is the frame length in seconds.
func (g *Game) updatePhase(start bool, dt float64) {
	switch g.phase {
	case PhaseMenu:
		if start {
			g.startRound()
		}
	case PhasePlaying:
		g.timeLeft -= dt
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.endRound()
		}
	case PhaseGameOver:
		g.overFor += dt
		if start && g.overFor >= g.cfg.Game.ScoreScreenPause {
			g.score = 0
			g.startRound()
		}
	}
}

// startRound enters the playing phase with a full clock.
func (g *Game) startRound() {
	g.phase = PhasePlaying
	g.timeLeft = g.cfg.Game.MaxTime
	g.kills = 0
	g.hits = 0
	g.ticks = 0
	g.enemyCD.Clear()
	g.bulletCD.Clear()
	g.logger.Debug("round started", "build", g.build.ID, "time", g.timeLeft)
}

// endRound clears the field and shows the score screen.
func (g *Game) endRound() {
	g.phase = PhaseGameOver
	g.overFor = 0
	g.clearField()
	g.logger.Debug("round over", "build", g.build.ID, "score", g.score, "kills", g.kills, "hits", g.hits)
}

// clearField destroys all enemies and bullets and recenters ship and camera.
func (g *Game) clearField() {
	g.store.DestroyAll(KindBullet)
	g.store.DestroyAll(KindEnemy)
	g.eng.Particles.Clear()
	g.ship.Reset()
	g.eng.Camera.Position = g.cameraHome
}
