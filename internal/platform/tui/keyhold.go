package tui

import (
	"time"

	"github.com/andrewmow/quizwalk/internal/core"
)

// DefaultHoldTTL is how long a hold action stays pressed after its last key
// event. Terminals send no key-up events, only the initial press and then
// auto-repeats, so the gap before the first repeat (~500ms on most setups)
// has to fit inside the TTL or movement stutters.
const DefaultHoldTTL = 600 * time.Millisecond

// KeyHold synthesizes key-up edges for hold-style actions. Every key event
// refreshes the action's timestamp; when no event arrives within the TTL the
// tracker emits a Release edge on the next tick.
type KeyHold struct {
	ttl  time.Duration
	last map[core.Action]time.Time
}

// NewKeyHold creates a tracker with the given TTL. Zero uses the default.
func NewKeyHold(ttl time.Duration) *KeyHold {
	if ttl <= 0 {
		ttl = DefaultHoldTTL
	}
	return &KeyHold{
		ttl:  ttl,
		last: make(map[core.Action]time.Time),
	}
}

// KeyDown records a key event for a hold action. The first event emits a
// Press edge into the frame; repeats only refresh the timestamp.
func (k *KeyHold) KeyDown(a core.Action, now time.Time, frame *core.InputFrame) {
	if _, held := k.last[a]; !held {
		frame.Press(a)
	}
	k.last[a] = now
}

// Tick expires stale holds, emitting Release edges for actions whose last
// key event is older than the TTL. Call once per simulation tick before
// stepping the game.
func (k *KeyHold) Tick(now time.Time, frame *core.InputFrame) {
	for a, seen := range k.last {
		if now.Sub(seen) >= k.ttl {
			frame.Release(a)
			delete(k.last, a)
		}
	}
}

// ReleaseAll force-releases every held action. Used when input focus moves
// away from the player, e.g. when a panel opens.
func (k *KeyHold) ReleaseAll(frame *core.InputFrame) {
	for a := range k.last {
		frame.Release(a)
		delete(k.last, a)
	}
}

// Held reports whether the action is currently considered held.
func (k *KeyHold) Held(a core.Action) bool {
	_, ok := k.last[a]
	return ok
}
