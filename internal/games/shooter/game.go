// Package shooter implements the arcade shooter builds. Each build is a
// registered game that turns on more of the same Game: a falling box demo,
// an enemy spawner, a ship that shoots, and the full timed game.
package shooter

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/engine"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Package-level settings, set from the CLI before games are created.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	soundPlayer      engine.SoundPlayer = engine.NopPlayer{}
	logger           *log.Logger        = log.New(io.Discard)
	highScoreFn      func(gameID string) int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetSoundPlayer sets the player used for sound effects.
func SetSoundPlayer(p engine.SoundPlayer) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if p == nil {
		p = engine.NopPlayer{}
	}
	soundPlayer = p
}

// SetLogger sets the logger used by games and their engines.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetHighScoreLookup sets the function used to show the best score in the HUD.
func SetHighScoreLookup(fn func(gameID string) int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	highScoreFn = fn
}

func init() {
	for _, b := range Builds() {
		registry.Register(b.ID, func() registry.Game {
			return New(b)
		})
	}
}

// Game is one shooter build. All mutable state lives here and is reached
// from Step and from the contact callbacks the engine invokes during the
// physics step of that same call.
type Game struct {
	build   Build
	fixed   *config.ShooterConfig // Used instead of loading when set
	cfg     config.ShooterConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	logger  *log.Logger

	eng        *engine.Engine
	store      *Store
	difficulty *config.DifficultyManager
	initErr    error

	ship       Ship
	box        Handle
	cameraHome core.Vec3

	phase    Phase
	score    int
	kills    int
	hits     int
	ticks    int
	timeLeft float64
	overFor  float64
	enemyCD  Cooldown
	bulletCD Cooldown

	paused    bool
	debug     bool
	highScore int
}

// New creates a game for a build.
func New(b Build) *Game {
	return &Game{build: b}
}

// NewWithConfig creates a game that always uses cfg instead of loading
// configuration on Reset.
func NewWithConfig(b Build, cfg config.ShooterConfig) *Game {
	return &Game{build: b, fixed: &cfg}
}

// ID returns the build identifier.
func (g *Game) ID() string {
	return g.build.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.build.Title
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return g.build.Description
}

// Reset loads configuration and rebuilds the engine and scene.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	settingsMu.RLock()
	path, preset, player, lg, hs := configPath, difficultyPreset, soundPlayer, logger, highScoreFn
	settingsMu.RUnlock()

	g.runtime = runtime
	g.logger = lg.WithPrefix(g.build.ID)

	var cfg config.ShooterConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		var err error
		cfg, err = config.LoadShooter(path)
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			cfg = config.DefaultShooterConfig()
		}
		if preset != "" {
			config.ApplyShooterPreset(&cfg, preset)
		}
	}
	if !cfg.Audio.Enabled {
		player = engine.NopPlayer{}
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.score, g.kills, g.hits, g.ticks = 0, 0, 0, 0
	g.timeLeft, g.overFor = 0, 0
	g.paused = false
	g.debug = cfg.Engine.Debug
	g.enemyCD = NewCooldown(cfg.Spawner.EnemyCooldown, cfg.Spawner.TimerMode)
	g.bulletCD = NewCooldown(cfg.Spawner.BulletCooldown, cfg.Spawner.TimerMode)

	g.phase = PhasePlaying
	if g.build.Phases {
		g.phase = PhaseMenu
	}

	g.highScore = 0
	if hs != nil {
		g.highScore = hs(g.build.ID)
	}

	g.initErr = g.init(player)
	if g.initErr != nil {
		g.logger.Error("build failed to start", "err", g.initErr)
	}
}

// init creates the engine and the static scene for the build.
func (g *Game) init(player engine.SoundPlayer) error {
	cam := g.cfg.Camera
	eng, err := engine.New(engine.Params{
		RequiredVersion:  g.cfg.Engine.RequiredVersion,
		Gravity:          g.cfg.Physics.Gravity,
		CameraPosition:   core.V3(cam.Position[0], cam.Position[1], cam.Position[2]),
		CameraDirection:  core.V3(cam.Direction[0], cam.Direction[1], cam.Direction[2]),
		Zoom:             cam.CellScale,
		Seed:             g.runtime.Seed,
		ParticleLifetime: g.cfg.Particles.Lifetime,
		ParticleSpeed:    g.cfg.Particles.Speed,
		Materials:        materials,
		Meshes:           meshes,
		Reporter:         g.logger,
		Sound:            player,
	})
	if err != nil {
		return fmt.Errorf("shooter: %w", err)
	}
	g.eng = eng
	g.store = NewStore(eng.Physics)
	g.cameraHome = eng.Camera.Position
	g.eng.SetPreRendererDraw(g.preRendererDraw)

	g.addFloor()
	if g.build.FallingBox {
		if err := g.addBox(); err != nil {
			return err
		}
	}
	if g.build.Ship {
		if err := g.addShip(); err != nil {
			return err
		}
	}
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.initErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := 1 / float64(g.tickRate())
	if !g.eng.BeginFrame(dt) {
		return core.StepResult{State: g.State()}
	}
	g.update(in, dt)
	g.eng.EndFrame()

	return core.StepResult{State: g.State()}
}

// update is the per-frame game logic. Physics and contact callbacks for this
// frame have already run inside BeginFrame.
func (g *Game) update(in core.InputFrame, dt float64) {
	start := in.Has(core.ActionFire) || in.Has(core.ActionConfirm) || in.Has(core.ActionRestart)
	if g.build.Phases {
		g.updatePhase(start, dt)
	}

	if g.phase == PhasePlaying {
		g.ticks++
		step := g.timerStep(dt)

		if g.build.Ship {
			dx := g.ship.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight))
			if g.cfg.Camera.Follow {
				g.eng.Camera.MoveCamera(core.V3(dx, 0, 0))
			}
		}
		if g.build.Enemies {
			g.enemyCD.Threshold = g.difficulty.Cooldown(g.cfg.Spawner.EnemyCooldown, g.score, g.ticks)
			if g.enemyCD.Tick(step) {
				g.spawnEnemy()
			}
		}
		if g.build.Bullets {
			g.bulletCD.Advance(step)
			if in.Has(core.ActionFire) && g.bulletCD.Ready() {
				g.bulletCD.Reset()
				g.spawnBullet()
			}
		}
		g.sweepBoundaries()
	}

	g.drawHUD()
}

// tickRate returns the configured tick rate, defaulting to 60.
func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// timerStep is how much a cooldown advances this frame.
func (g *Game) timerStep(dt float64) float64 {
	if g.cfg.Spawner.TimerMode == config.TimerFrames {
		return 1
	}
	return dt
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
		Idle:     g.phase == PhaseMenu,
	}
}

// Resize adapts the HUD layout to a new screen size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// RunStats returns the kill and hit counts of the current or last round.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Kills:    g.kills,
		Hits:     g.hits,
		Duration: core.RuntimeConfig{TickRate: g.tickRate()}.TickDuration() * time.Duration(g.ticks),
	}
}

// Phase returns the current round phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Err returns the initialization error, if any.
func (g *Game) Err() error {
	return g.initErr
}
