// numblast is a terminal digit-blast puzzle: click connected groups of equal
// digits to destroy them, chain combos and race the 60-second clock.
//
// Usage:
//
//	numblast list              - List available modes
//	numblast play [mode]       - Play a round (classic by default)
//	numblast menu              - Interactive mode picker
//	numblast serve             - Start SSH server for remote play
//	numblast scores <mode>     - Show high scores for a mode
//	numblast stats [mode]      - Show aggregated play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.numblast/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/mkarpenko/numblast/internal/games/numblast"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numblast",
	Short: "Numblast - blast digit groups in your terminal",
	Long: `Numblast is a terminal puzzle: the board is an 8x8 grid of digits, and
clicking any connected group of two or more equal digits blasts it away.
Columns compact, fresh digits drop in, combos stack, and in classic mode
the clock gives you sixty seconds to squeeze out every point.

Available commands:
  list     - Show all available modes
  play     - Play a round directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregated statistics

Examples:
  numblast play
  numblast play numblast_zen
  numblast menu
  numblast serve --ssh :2222
  numblast scores numblast`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.numblast/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
