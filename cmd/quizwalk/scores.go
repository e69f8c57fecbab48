package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewmow/quizwalk/internal/registry"
	"github.com/andrewmow/quizwalk/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best results for a mode",
	Long: `Display the top 10 results for the specified mode.

Examples:
  quizwalk scores campus
  quizwalk scores campus_practice`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'quizwalk list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}

	results, err := store.TopResults(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("Best Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'quizwalk play %s' to record the first one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %s\n", "Rank", "Player", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-8s  %s\n", "----", "------", "-----", "-----", "----", "----")

	// Print results
	for i, entry := range results {
		elapsed := int(entry.ElapsedSecs)
		timeStr := fmt.Sprintf("%d:%02d", elapsed/60, elapsed%60)
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-8s  %s\n", i+1, entry.Player, entry.Score, entry.Level, timeStr, dateStr)
	}

	fmt.Println()
	if best, err := store.BestScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
