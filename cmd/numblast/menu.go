package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarpenko/numblast/internal/core"
	"github.com/mkarpenko/numblast/internal/games/numblast"
	"github.com/mkarpenko/numblast/internal/platform/tui"
	"github.com/mkarpenko/numblast/internal/registry"
	"github.com/mkarpenko/numblast/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a round ends, press Esc to return to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  numblast menu
  numblast menu --fps 60
  numblast menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	numblast.SetConfigPath(flagConfig)
	numblast.SetDifficultyPreset(flagDifficulty)

	// Menu loop
	for {
		menuResult, err := runMenuScreen(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per round
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}

// menuResult holds the outcome of one menu screen.
type menuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// runMenuScreen shows the mode picker and returns the selection.
func runMenuScreen(store *storage.Store, cfg core.RuntimeConfig) (menuResult, error) {
	model, err := tui.RunMenu(store, cfg)
	if err != nil {
		return menuResult{Config: cfg}, err
	}

	result := menuResult{Config: model.Config()}

	switch {
	case model.WantsScoreboard():
		result.WantsScoreboard = true
	case model.IsQuitting():
		result.Quit = true
	case model.Selected() != nil:
		result.GameID = model.Selected().GameID
	default:
		result.Quit = true
	}

	return result, nil
}
