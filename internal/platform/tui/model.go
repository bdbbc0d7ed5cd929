package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// holdTicks is how many ticks a steering or fire key stays down after a key
// event. Terminals report presses and auto-repeat but never releases.
const holdTicks = 8

// statusTicks is how long a status message stays on screen.
const statusTicks = 120

// Options configure a game model.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Local  bool // Screenshots and clipboard copy act on this machine
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      map[core.Action]int
	pressed   core.InputFrame
	gameState core.GameState
	local     bool

	status    string
	statusFor int

	quitting bool
	back     bool
	recorded bool // Round already saved for the current game over
}

// NewModel creates a model for game. A zero seed is replaced with a
// time-based one.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		logger:  logger,
		config:  cfg,
		keys:    NewKeyMapper(),
		held:    make(map[core.Action]int),
		pressed: core.NewInputFrame(),
		local:   opts.Local,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyScreen()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused || m.gameState.Idle {
			m.back = true
			return m, tea.Quit
		}
	case action == core.ActionLeft:
		m.held[core.ActionRight] = 0
		m.held[action] = holdTicks
	case action == core.ActionRight:
		m.held[core.ActionLeft] = 0
		m.held[action] = holdTicks
	case action == core.ActionFire:
		m.held[action] = holdTicks
	case action != core.ActionNone:
		m.pressed.Set(action)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.frame()
	result := m.game.Step(frame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.recorded:
		m.recordRound()
		m.recorded = true
	case !m.gameState.GameOver:
		m.recorded = false
	}

	if m.statusFor > 0 {
		m.statusFor--
		if m.statusFor == 0 {
			m.status = ""
		}
	}
	return m, tickCmd(m.config.TickRate)
}

// frame builds this tick's input from held keys and one-shot presses.
func (m *Model) frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range m.held {
		if n > 0 {
			frame.Set(a)
			m.held[a] = n - 1
		}
	}
	for a := range m.pressed.Actions {
		frame.Set(a)
	}
	m.pressed.Clear()
	return frame
}

// recordRound saves the finished round. Storage errors are logged and the
// game carries on.
func (m *Model) recordRound() {
	if m.store == nil {
		return
	}
	id := m.game.ID()
	score := m.gameState.Score

	if score > 0 {
		if _, err := m.store.SaveScore(id, score); err != nil {
			m.logger.Warn("could not save score", "game", id, "err", err)
		}
	}

	run := storage.Run{GameID: id, Score: score, Seed: m.config.Seed}
	if sr, ok := m.game.(registry.StatsReporter); ok {
		stats := sr.RunStats()
		run.Kills, run.Hits, run.Duration = stats.Kills, stats.Hits, stats.Duration
	}
	runID, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "game", id, "err", err)
		return
	}
	m.logger.Info("round recorded", "game", id, "run", runID, "score", score, "kills", run.Kills)
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusFor = statusTicks
}

// saveScreenshot writes the current frame as text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	if !m.local {
		return
	}
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.setStatus("saved %s", path)
}

// copyScreen puts the current frame on the system clipboard.
func (m *Model) copyScreen() {
	if !m.local || clipboard.Unsupported {
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("clipboard copy failed", "err", err)
		return
	}
	m.setStatus("copied screen to clipboard")
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColor(1, m.screen.Height()-1, m.status, core.ColorBrightGreen)
	}
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Result describes how a local game ended.
type Result struct {
	Back   bool // Return to the menu rather than exit
	Config core.RuntimeConfig
}

// Run plays game in the local terminal until the player quits or goes back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	opts.Local = true
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}
	return Result{Back: m.back, Config: m.config}, nil
}
