package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarpenko/numblast/internal/registry"
	"github.com/mkarpenko/numblast/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [mode]",
	Short: "Show aggregated play statistics",
	Long: `Display aggregated statistics: rounds played, best and average score,
highest level and combo, and when the mode was last played.

With no argument, shows statistics for every mode that has been played.

Examples:
  numblast stats
  numblast stats numblast`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'numblast list' to see available modes.")
			os.Exit(1)
		}

		stats, err := store.GetGameStats(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		printStats(stats)
		return
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		return
	}

	// Stable order: registered modes first, then anything else
	for _, g := range registry.List() {
		if stats, ok := all[g.ID]; ok {
			printStats(stats)
			fmt.Println()
			delete(all, g.ID)
		}
	}
	for _, stats := range all {
		printStats(stats)
		fmt.Println()
	}
}

func printStats(s *storage.GameStats) {
	fmt.Printf("%s\n", s.GameID)
	if s.GamesCount == 0 {
		fmt.Println("  No rounds recorded yet.")
		return
	}
	fmt.Printf("  Rounds played: %d\n", s.GamesCount)
	fmt.Printf("  High score:    %d\n", s.HighScore)
	fmt.Printf("  Best level:    %d\n", s.BestLevel)
	fmt.Printf("  Best combo:    x%d\n", s.BestCombo)
	fmt.Printf("  Average score: %.1f\n", s.AvgScore)
	fmt.Printf("  Total score:   %d\n", s.TotalScore)
	if !s.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
