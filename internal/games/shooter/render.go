package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
)

// drawHUD queues this frame's HUD text with the engine.
func (g *Game) drawHUD() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH

	if g.build.HelloText {
		g.eng.DrawText(engine.TextParams{Text: "Hello World!", Y: h / 4, Color: core.ColorBrightWhite, Centered: true})
	}

	switch {
	case g.build.Phases:
		if g.phase != PhaseMenu {
			timeText := fmt.Sprintf("Time: %d", int(math.Ceil(g.timeLeft)))
			g.eng.DrawText(engine.TextParams{Text: timeText, X: 1, Y: 0, Color: core.ColorBrightWhite})
		}
		if g.highScore > 0 {
			g.eng.DrawText(engine.TextParams{Text: fmt.Sprintf("Best: %d", g.highScore), Y: 0, Color: core.ColorGray, Centered: true})
		}
		scoreText := fmt.Sprintf("Score: %d", g.score)
		g.eng.DrawText(engine.TextParams{Text: scoreText, X: w - len(scoreText) - 1, Y: 0, Color: core.ColorBrightWhite})
	case g.build.Bullets:
		scoreText := fmt.Sprintf("Score: %d", g.score)
		g.eng.DrawText(engine.TextParams{Text: scoreText, X: w - len(scoreText) - 1, Y: 0, Color: core.ColorBrightWhite})
	case g.build.Enemies:
		g.eng.DrawText(engine.TextParams{Text: fmt.Sprintf("Enemies: %d", g.store.Len(KindEnemy)), X: 1, Y: 0})
	}

	if g.debug {
		dbg := fmt.Sprintf("bodies:%d enemies:%d bullets:%d particles:%d",
			len(g.eng.World.Bodies()), g.store.Len(KindEnemy), g.store.Len(KindBullet), len(g.eng.Particles.Particles()))
		g.eng.DrawText(engine.TextParams{Text: dbg, X: 1, Y: h - 1, Color: core.ColorBrightGreen})
	}
}

// preRendererDraw runs after the scene is drawn and before HUD text.
func (g *Game) preRendererDraw(dst *core.Screen) {
	if g.debug {
		g.eng.DrawPhysicsNodes(dst)
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.initErr != nil {
		drawCenteredBox(dst, "FAILED TO START", g.initErr.Error())
		return
	}

	g.eng.Render(dst)
	g.renderOverlay(dst)
}

// renderOverlay draws phase and pause messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}
	if !g.build.Phases {
		return
	}

	switch g.phase {
	case PhaseMenu:
		drawCenteredBox(dst, "SHOOTER", "Press SPACE or ENTER to start")
	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d", g.score)
		if g.overFor >= g.cfg.Game.ScoreScreenPause {
			subtitle += "  |  Press SPACE to play again"
		}
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
