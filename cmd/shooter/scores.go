package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagRuns  bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <build>",
	Short: "Show high scores for a build",
	Long: `Display the best scores for a build, or its most recent runs.

Examples:
  shooter scores shooter
  shooter scores shooter --runs --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'shooter list' to see builds)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagRuns {
		return printRuns(store, gameID, game.Title())
	}
	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("\nPlay 'shooter play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Printf("\nGames: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	return nil
}

func printRuns(store *storage.Store, gameID, title string) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Printf("Recent Runs - %s\n\n", title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-5s  %-5s  %-4s  %-6s  %s\n", "Run", "Score", "Kills", "Hits", "Time", "Date")
	fmt.Printf("  %-8s  %-5s  %-5s  %-4s  %-6s  %s\n", "---", "-----", "-----", "----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-5d  %-5d  %-4d  %-6s  %s\n",
			r.RunID.String()[:8], r.Score, r.Kills, r.Hits,
			fmt.Sprintf("%.0fs", r.Duration.Seconds()), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
