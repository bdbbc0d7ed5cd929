// shooter runs the arcade shooter builds in the terminal.
//
// Usage:
//
//	shooter list              - List the builds
//	shooter play <build>      - Play a build
//	shooter menu              - Pick builds from a menu
//	shooter serve             - Host sessions over SSH
//	shooter scores <build>    - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible rounds
//	--db <path>           - Scores database (default: ~/.arcade/scores.db)
//	--config <path>       - Shooter config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Log destination (default: ~/.arcade/shooter.log)
//	--mute                - Disable sound
//	--profile cpu|mem     - Write a profile to the working directory
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagMute       bool
	flagProfile    string
)

// logger is set up before any command runs.
var logger = log.New(os.Stderr)

// cleanups run in reverse order after the command finishes.
var cleanups []func()

func main() {
	err := rootCmd.Execute()
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - a tiny arcade shooter in your terminal",
	Long: `Shooter is a terminal arcade shooter built up in four steps:

  shooter_physics  - camera, floor and a falling box
  shooter_enemies  - enemies spawn and fly past the camera
  shooter_bullets  - steer the ship and shoot enemies down
  shooter          - timed rounds with a score screen

Examples:
  shooter list
  shooter play shooter
  shooter play shooter --difficulty hard --mute
  shooter menu
  shooter serve --ssh :2222
  shooter scores shooter`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/shooter.log", "Log file path")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	pf.StringVar(&flagProfile, "profile", "", "Write a cpu or mem profile")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, serveCmd, scoresCmd)
}

// setup configures logging, profiling and the shooter package settings.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	if err := openLog(flagLogFile); err != nil {
		return err
	}
	if err := startProfile(flagProfile); err != nil {
		return err
	}

	shooter.SetLogger(logger)
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openLog points the logger at path. The terminal belongs to the TUI, so
// logs go to a file.
func openLog(path string) error {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	cleanups = append(cleanups, func() { f.Close() })

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	if os.Getenv("SHOOTER_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

func startProfile(kind string) error {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return fmt.Errorf("unknown profile %q (want cpu or mem)", kind)
	}
	p := profile.Start(mode, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	cleanups = append(cleanups, p.Stop)
	return nil
}

// startAudio opens the speaker for local play. Failures are logged and the
// game runs silent.
func startAudio() {
	if flagMute {
		return
	}
	player := audio.NewBeepPlayer(logger)
	if err := player.Init(); err != nil {
		return
	}
	shooter.SetSoundPlayer(player)
	cleanups = append(cleanups, player.Close)
}

// openStore opens the scores database. A failure is logged and nil is
// returned, since every command except scores can run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	cleanups = append(cleanups, func() { store.Close() })
	shooter.SetHighScoreLookup(store.BestScore)
	return store
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
