package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <build>",
	Short: "Play a build",
	Long: `Start playing the given build.

Controls:
  A/D, Left/Right  - Steer the ship
  Space            - Fire, start a round
  Enter            - Start a round
  P                - Pause
  F1               - Toggle physics debug drawing
  Ctrl+S           - Save a screenshot
  Ctrl+Y           - Copy the screen to the clipboard
  B/Esc            - Back (when paused or the round is over)
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - longer rounds, no hit penalty
  normal - default settings
  hard   - shorter rounds, bigger hit penalty
  fixed  - no progression, enemies keep their base speed

Examples:
  shooter play shooter
  shooter play shooter_bullets --seed 42
  shooter play shooter --difficulty hard
  shooter play shooter --config ./my-shooter.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := registry.Create(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'shooter list' to see builds)", err)
	}

	startAudio()
	store := openStore()

	logger.Info("playing", "game", game.ID(), "fps", flagFPS, "seed", flagSeed)
	if _, err := tui.Run(game, terminalConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
