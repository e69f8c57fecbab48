package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewmow/quizwalk/internal/config"
	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/registry"
	"github.com/andrewmow/quizwalk/internal/storage"
)

// LevelsReloadedMsg tells the model the level files changed on disk.
type LevelsReloadedMsg struct{}

// LevelReloader is implemented by games that can re-read their level files
// while running.
type LevelReloader interface {
	ReloadLevels() error
}

// DirectionKeyer is implemented by games whose current level overrides the
// movement key bindings.
type DirectionKeyer interface {
	DirectionKeys() map[string]core.Action
}

// Model is the Bubble Tea model for running quizwalk games.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	player      string
	keymap      *KeyMapper
	hold        *KeyHold
	inputFrame  core.InputFrame
	gameState   core.GameState
	lastLevel   int
	quitting    bool
	backToMenu  bool // Set when the user leaves a finished game for the menu
	resultSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, appCfg config.CampusConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     appCfg.Player.Name,
		keymap:     NewKeyMapper(appCfg.Keys),
		hold:       NewKeyHold(0),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelsReloadedMsg:
		if r, ok := m.game.(LevelReloader); ok {
			//nolint:errcheck // Broken files are skipped; the game keeps running
			r.ReloadLevels()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	textEntry := m.gameState.TextEntry

	// B goes back to the menu once the run is over (session flows only)
	if m.gameState.GameOver && msg.String() == "b" {
		m.backToMenu = true
		return m, nil
	}

	action, isQuit := m.keymap.MapKey(msg, textEntry)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone && textEntry:
		// Printable keys go to the answer fields as text.
		switch msg.Type {
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.inputFrame.Type(r)
			}
		case tea.KeySpace:
			m.inputFrame.Type(' ')
		}

	case IsHoldAction(action):
		m.hold.KeyDown(action, time.Now(), &m.inputFrame)

	case action != core.ActionNone:
		m.inputFrame.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. Games that rescale in place
// keep their state; the rest restart at the new dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Expire stale holds before stepping so release edges land this tick
	m.hold.Tick(time.Now(), &m.inputFrame)

	// While a panel has focus the player must stop walking
	if m.gameState.TextEntry {
		m.hold.ReleaseAll(&m.inputFrame)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Pick up per-level key overrides when the level changes
	if m.gameState.Level != m.lastLevel {
		m.lastLevel = m.gameState.Level
		if dk, ok := m.game.(DirectionKeyer); ok {
			m.keymap.SetOverrides(dk.DirectionKeys())
		}
	}

	// Save the result on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(storage.ResultEntry{
				GameID:      m.game.ID(),
				Player:      m.player,
				Level:       m.gameState.Level,
				ElapsedSecs: m.gameState.Elapsed,
				Score:       m.gameState.Score,
			})
		}
		m.resultSaved = true
	}
	if !m.gameState.GameOver {
		m.resultSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".quizwalk", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, appCfg config.CampusConfig) error {
	model := NewModel(game, store, cfg, appCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
