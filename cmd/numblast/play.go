package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpenko/numblast/internal/core"
	"github.com/mkarpenko/numblast/internal/games/numblast"
	"github.com/mkarpenko/numblast/internal/platform/tui"
	"github.com/mkarpenko/numblast/internal/registry"
	"github.com/mkarpenko/numblast/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start playing the specified mode. Defaults to the classic timed round.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Blast selected group
  Mouse        - Hover to preview, click to blast
  X            - Claim power-up
  P            - Pause
  R            - Restart
  Q/Ctrl+C     - Quit

Difficulty options:
  relaxed - Longer round, generous power-ups
  normal  - Standard 60-second round
  frenzy  - Short round, rare power-ups
  fixed   - No preset adjustments, pure config values

Examples:
  numblast play
  numblast play numblast_zen
  numblast play --difficulty frenzy
  numblast play --config ./my-numblast.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: relaxed, normal, frenzy, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "numblast"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'numblast list' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	numblast.SetConfigPath(flagConfig)
	numblast.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
