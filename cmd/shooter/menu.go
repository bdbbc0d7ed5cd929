package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick builds from a menu",
	Long: `Start with a build picker. After a round you can go back to the
menu with B or Esc and pick another build.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	startAudio()
	store := openStore()
	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !back {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		logger.Info("playing", "game", game.ID())
		played, err := tui.Run(game, cfg, tui.Options{Store: store, Logger: logger})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !played.Back {
			return nil
		}
		cfg = played.Config
	}
}
