// rollingcubes is the Rolling Cubes puzzle in the terminal: roll dice around
// a 4x4 tray until every one shows the goal face.
//
// Usage:
//
//	rollingcubes list              - List puzzle variants
//	rollingcubes play [variant]    - Play a puzzle (default: cubes)
//	rollingcubes menu              - Start menu to pick variants interactively
//	rollingcubes scores            - Show the leaderboard
//	rollingcubes serve             - Start SSH server for remote play
//	rollingcubes validate [file]   - Check a puzzle config file
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.rollingcubes/results.db)
//	--player <name>   - Name recorded with results
//	--config <path>   - Custom puzzle config YAML
//	--debug           - Write debug logs to ~/.rollingcubes/debug.log
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rollingcubes/internal/config"
	"github.com/vovakirdan/rollingcubes/internal/games/rollingcubes"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagPlayer string
	flagConfig string
	flagDebug  bool

	// Loaded in PersistentPreRunE
	cubesConfig config.CubesConfig
	debugFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	closeDebugLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rollingcubes",
	Short: "Rolling Cubes - a dice sliding puzzle for your terminal",
	Long: `Rolling Cubes is a 4x4 sliding puzzle played with dice.

Fifteen cubes and one empty cell share the tray. Rolling a cube into the
empty cell tips it over the edge it crosses, changing the face it shows.
The puzzle is solved when every cube shows the goal face.

Available commands:
  list      - Show all puzzle variants
  play      - Play a variant directly
  menu      - Interactive variant picker with leaderboard
  scores    - Show the leaderboard
  serve     - Start SSH server for remote play
  validate  - Check a puzzle config file

Examples:
  rollingcubes play
  rollingcubes play cubes_tutorial
  rollingcubes menu --player alice
  rollingcubes serve --ssh :2222
  rollingcubes scores --recent`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rollingcubes/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with results")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.rollingcubes/debug.log")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads the puzzle config and the debug logger before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagDebug {
		if err := openDebugLog(); err != nil {
			return err
		}
	}

	// validate loads its own file
	if cmd == validateCmd {
		return nil
	}

	cfg, err := config.LoadCubes(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}

	cubesConfig = cfg
	rollingcubes.SetConfig(cfg)
	return nil
}

// openDebugLog routes game debug logs to a file, keeping the terminal clean.
func openDebugLog() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".rollingcubes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open debug log: %w", err)
	}
	debugFile = f

	rollingcubes.SetLogger(log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "rollingcubes",
	}))
	return nil
}

func closeDebugLog() {
	if debugFile != nil {
		debugFile.Close()
	}
}
