package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollingcubes/internal/games/rollingcubes"
	"github.com/vovakirdan/rollingcubes/internal/platform/tui"
	"github.com/vovakirdan/rollingcubes/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
	flagPuzzle string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the fastest solves of one puzzle, or the most recent games with --recent.

Best times are ranked per puzzle. By default that is the classic puzzle as
configured; --puzzle picks another key, such as cubes_tutorial or a custom
key shown by --recent. With --player, also prints that player's record.

Examples:
  rollingcubes scores
  rollingcubes scores --limit 20
  rollingcubes scores --recent
  rollingcubes scores --puzzle cubes_tutorial
  rollingcubes scores --player alice`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show most recent games instead of best times")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results")
	scoresCmd.Flags().StringVar(&flagPuzzle, "puzzle", "", "Leaderboard to show (default: the configured classic puzzle)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	}

	puzzle := flagPuzzle
	if puzzle == "" {
		puzzle = rollingcubes.ClassicPuzzle()
	}

	var results []storage.GameResult
	title := "Best Times (" + puzzle + ")"
	if flagRecent {
		title = "Recent Games"
		results, err = store.RecentResults(flagLimit)
	} else {
		results, err = store.BestResults(puzzle, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Printf("Rolling Cubes - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rollingcubes play' to set the first time!")
	} else {
		fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-8s  %-16s  %s\n", "Rank", "Player", "Result", "Steps", "Time", "Date", "Puzzle")
		fmt.Printf("  %-4s  %-16s  %-7s  %-5s  %-8s  %-16s  %s\n", "----", "------", "------", "-----", "----", "----", "------")

		for i, r := range results {
			outcome := "solved"
			if !r.Solved {
				outcome = "gave up"
			}
			fmt.Printf("  %-4d  %-16s  %-7s  %-5d  %-8s  %-16s  %s\n",
				i+1, r.Player, outcome, r.Steps, tui.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"), r.Puzzle)
		}
	}

	if cubesConfig.Player != "" {
		stats, err := store.PlayerStats(cubesConfig.Player, puzzle)
		if err != nil {
			return fmt.Errorf("retrieving player stats: %w", err)
		}
		fmt.Println()
		fmt.Printf("%s: %d games, %d solved", stats.Player, stats.GamesCount, stats.SolvedCount)
		if stats.SolvedCount > 0 {
			fmt.Printf(", best %s, fewest steps %d", tui.FormatDuration(stats.BestDuration), stats.FewestSteps)
		}
		fmt.Println()
	}
	return nil
}
