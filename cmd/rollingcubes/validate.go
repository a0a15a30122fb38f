package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollingcubes/internal/config"
)

var flagPrintDefault bool

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a puzzle config file",
	Long: `Load a puzzle config and print its start board, or the reason it is invalid.

Without a file, the config found by the usual search order is checked:
--config, ~/.rollingcubes/configs/cubes.yaml, ./configs/cubes.yaml, then
the built-in default.

Examples:
  rollingcubes validate ./my-puzzle.yaml
  rollingcubes validate --print-default > cubes.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in config YAML and exit")
}

func runValidate(_ *cobra.Command, args []string) error {
	if flagPrintDefault {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	path := flagConfig
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.LoadCubes(path)
	if err != nil {
		return err
	}

	board, err := cfg.Board()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	row, col := board.EmptyCell()
	fmt.Println("Config OK")
	fmt.Println()
	fmt.Print(board.String())
	fmt.Println()
	fmt.Printf("Goal: %d  Empty cell: (%d,%d)  Solved: %v\n", board.Goal().Int(), row, col, board.IsSolved())
	return nil
}
