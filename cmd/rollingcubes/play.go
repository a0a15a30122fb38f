package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rollingcubes/internal/core"
	"github.com/vovakirdan/rollingcubes/internal/games/rollingcubes"
	"github.com/vovakirdan/rollingcubes/internal/platform/tui"
	"github.com/vovakirdan/rollingcubes/internal/registry"
	"github.com/vovakirdan/rollingcubes/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a puzzle",
	Long: `Start playing the specified variant (default: cubes).

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Roll the selected cube into the empty cell
  P            - Pause
  R            - Restart
  Esc/B        - Leave (when paused or solved)
  Q/Ctrl+C     - Quit

Examples:
  rollingcubes play
  rollingcubes play cubes_tutorial
  rollingcubes play --config ./my-puzzle.yaml --player alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(rollingcubes.VariantClassic)
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown puzzle %q (run 'rollingcubes list' to see available puzzles)", gameID)
	}

	cfg := runtimeConfig()

	player, ok := resolvePlayer(cfg.ScreenW)
	if !ok {
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating puzzle: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, player)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running puzzle: %w", runErr)
	}
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// resolvePlayer returns the configured player name, asking for one when
// none is set. ok is false if the user cancelled the prompt.
func resolvePlayer(width int) (player string, ok bool) {
	if cubesConfig.Player != "" {
		return tui.SanitizeName(cubesConfig.Player), true
	}

	name, ok, err := tui.RunNamePrompt(os.Getenv("USER"), width)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: name prompt failed: %v\n", err)
		return tui.DefaultPlayer, true
	}
	if ok {
		// Ask only once per run
		cubesConfig.Player = name
	}
	return name, ok
}
