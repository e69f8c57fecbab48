package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andrewmow/quizwalk/internal/config"
	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/games/campus"
	"github.com/andrewmow/quizwalk/internal/platform/tui"
	"github.com/andrewmow/quizwalk/internal/registry"
	"github.com/andrewmow/quizwalk/internal/storage"
)

var (
	flagConfig string
	flagLevels string
	flagLevel  int
	flagPlayer string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  W/A/S/D    - Move (levels may override these)
  E          - Talk to an adjacent tutor
  Enter      - Next answer field (in a quiz)
  Ctrl+U     - Submit quiz answers
  Esc        - Dismiss quiz / finish the level
  P          - Pause
  R          - Restart (after all levels complete)
  Q/Ctrl+C   - Quit

Examples:
  quizwalk play campus
  quizwalk play campus --level 2
  quizwalk play campus_practice --level 1
  quizwalk play campus --levels ./my-levels --watch
  quizwalk play campus --config ./my-campus.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level YAML files (default: built-in levels)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-based, 0 = first)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name recorded with results")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload level files when they change on disk")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'quizwalk list' to see available modes.")
		os.Exit(1)
	}

	appCfg, err := config.LoadCampus(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPlayer != "" {
		appCfg.Player.Name = flagPlayer
	}

	// Flags win over the config file for the level directory
	levelDir := appCfg.Levels.Dir
	if flagLevels != "" {
		levelDir = flagLevels
	}
	campus.SetLevelDir(levelDir)
	if flagLevel > 0 {
		campus.SetStartLevel(flagLevel)
	}

	// Get terminal size
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

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	if flagWatch && levelDir != "" {
		runErr = tui.RunWatch(game, store, cfg, appCfg, levelDir)
	} else {
		runErr = tui.Run(game, store, cfg, appCfg)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
