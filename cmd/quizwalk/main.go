// quizwalk is a TUI campus walk game: explore course levels in the terminal,
// talk to tutors and answer their quizzes.
//
// Usage:
//
//	quizwalk list              - List available game modes
//	quizwalk play <mode>       - Play a mode
//	quizwalk menu              - Start menu to pick modes interactively
//	quizwalk serve             - Start SSH server for remote play
//	quizwalk scores <mode>     - Show best results for a mode
//	quizwalk levels            - List and validate level files
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.quizwalk/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/andrewmow/quizwalk/internal/games/campus"
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
	Use:   "quizwalk",
	Short: "Quizwalk - Walk the campus and answer quizzes in your terminal",
	Long: `Quizwalk is a terminal game where you guide a student across campus
levels, talk to tutors and answer their quiz questions.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View best results
  levels   - List and validate level files

Examples:
  quizwalk list
  quizwalk play campus
  quizwalk menu
  quizwalk serve --ssh :2222
  quizwalk scores campus`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.quizwalk/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
