package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all builds",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No builds available.")
		return
	}

	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Println("Available builds:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, g.Description)
	}
	fmt.Println()
	fmt.Println("Run 'shooter play <id>' to play a build.")
}
