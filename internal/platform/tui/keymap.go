package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andrewmow/quizwalk/internal/config"
	"github.com/andrewmow/quizwalk/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings come from the config file; a level may override the movement keys
// through the game's DirectionKeys hook.
type KeyMapper struct {
	bindings  map[string]core.Action
	overrides map[string]core.Action
}

// NewKeyMapper creates a key mapper from the configured bindings.
func NewKeyMapper(keys config.KeysConfig) *KeyMapper {
	km := &KeyMapper{
		bindings: map[string]core.Action{
			"up":        core.ActionUp,
			"down":      core.ActionDown,
			"left":      core.ActionLeft,
			"right":     core.ActionRight,
			"esc":       core.ActionExit,
			"enter":     core.ActionConfirm,
			"backspace": core.ActionErase,
			"p":         core.ActionPause,
			"r":         core.ActionRestart,
		},
	}
	km.bind(keys.Up, core.ActionUp)
	km.bind(keys.Down, core.ActionDown)
	km.bind(keys.Left, core.ActionLeft)
	km.bind(keys.Right, core.ActionRight)
	km.bind(keys.Interact, core.ActionInteract)
	km.bind(keys.Submit, core.ActionSubmit)
	return km
}

func (km *KeyMapper) bind(key string, action core.Action) {
	if key != "" {
		km.bindings[key] = action
	}
}

// SetOverrides installs per-level movement key overrides. Pass nil to
// restore the configured bindings.
func (km *KeyMapper) SetOverrides(overrides map[string]core.Action) {
	km.overrides = overrides
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
//
// While the game is in text entry mode printable keys are not mapped: they
// belong to the answer fields, so only control keys resolve to actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, textEntry bool) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys. Plain q stays typeable during text entry.
	if key == "ctrl+c" || (key == "q" && !textEntry) {
		return core.ActionQuit, true
	}

	if textEntry {
		switch key {
		case "esc":
			return core.ActionExit, false
		case "enter":
			return core.ActionConfirm, false
		case "backspace":
			return core.ActionErase, false
		case "ctrl+u":
			return core.ActionSubmit, false
		}
		return core.ActionNone, false
	}

	if km.overrides != nil {
		if a, ok := km.overrides[key]; ok {
			return a, false
		}
	}
	if a, ok := km.bindings[key]; ok {
		return a, false
	}

	return core.ActionNone, false
}

// IsHoldAction reports whether the action follows press/hold/release
// semantics and should run through the key hold tracker.
func IsHoldAction(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
