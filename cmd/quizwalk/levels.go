package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate level files",
	Long: `Shows the levels in play order, with their entities and quizzes.
Invalid level files are reported with the validation error.

Examples:
  quizwalk levels
  quizwalk levels --dir ./my-levels`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of level YAML files (default: built-in levels)")
}

func runLevels(cmd *cobra.Command, args []string) {
	var (
		lvls []levels.Level
		err  error
	)

	if flagLevelsDir != "" {
		loader := levels.Loader{Root: flagLevelsDir}
		lvls, err = loader.LoadAll()
	} else {
		lvls, err = levels.Defaults()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No valid levels found.")
		return
	}

	fmt.Printf("Levels (%d):\n", len(lvls))
	fmt.Println()

	for i, lvl := range lvls {
		fmt.Printf("  %d. %s — %s\n", i+1, lvl.ID, lvl.Name)
		for _, d := range lvl.Entities {
			line := fmt.Sprintf("       %-12s %s", d.Kind, d.ID)
			if d.Quiz != nil {
				line += fmt.Sprintf("  (quiz: %s, %d questions)", d.Quiz.Title, len(d.Quiz.Questions))
			}
			fmt.Println(line)
		}
	}

	fmt.Println()
	fmt.Println("Run 'quizwalk play campus' to start from the first level.")
}
