package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score
	Level     int     // Current level (1-based), 0 if not applicable
	Elapsed   float64 // Play time in seconds, derived from ticks
	GameOver  bool    // Whether the game has ended
	Paused    bool    // Whether the game is paused
	TextEntry bool    // Whether the game wants printable keys as text input
}

// EventKind identifies a notification emitted by a game step.
type EventKind int

const (
	// EventLevelEnd fires when a level is torn down and the index advances.
	EventLevelEnd EventKind = iota + 1
	// EventQuizSubmitted fires when an answer panel is submitted.
	EventQuizSubmitted
)

// Event is a notification produced during a simulation tick.
type Event struct {
	Kind   EventKind
	Level  int    // Level the event refers to (1-based)
	Detail string // Free-form description, e.g. quiz title
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
