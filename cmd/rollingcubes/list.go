package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollingcubes/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all puzzle variants",
	Long:  `Shows a list of all registered Rolling Cubes variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'rollingcubes play <id>' to play a puzzle.")
}
