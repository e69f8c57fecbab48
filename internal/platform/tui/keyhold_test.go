package tui

import (
	"testing"
	"time"

	"github.com/andrewmow/quizwalk/internal/core"
)

func TestKeyHoldPressEdgeOnce(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	now := time.Now()

	frame := core.NewInputFrame()
	h.KeyDown(core.ActionRight, now, &frame)
	if !frame.Down(core.ActionRight) {
		t.Fatal("first key event should emit a press edge")
	}
	if !h.Held(core.ActionRight) {
		t.Fatal("action should be held after key down")
	}

	// Auto-repeat within the TTL only refreshes the timestamp.
	frame.Clear()
	h.KeyDown(core.ActionRight, now.Add(50*time.Millisecond), &frame)
	if frame.Down(core.ActionRight) {
		t.Error("repeat must not emit a second press edge")
	}
}

func TestKeyHoldExpiry(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	now := time.Now()

	frame := core.NewInputFrame()
	h.KeyDown(core.ActionUp, now, &frame)

	// Still inside the TTL: no release.
	frame.Clear()
	h.Tick(now.Add(99*time.Millisecond), &frame)
	if frame.Up(core.ActionUp) {
		t.Error("hold must not expire before the TTL")
	}
	if !h.Held(core.ActionUp) {
		t.Error("action should still be held")
	}

	// Past the TTL: release edge, hold dropped.
	frame.Clear()
	h.Tick(now.Add(101*time.Millisecond), &frame)
	if !frame.Up(core.ActionUp) {
		t.Error("expected release edge after TTL")
	}
	if h.Held(core.ActionUp) {
		t.Error("expired action should no longer be held")
	}
}

func TestKeyHoldRepeatExtendsHold(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	now := time.Now()

	frame := core.NewInputFrame()
	h.KeyDown(core.ActionLeft, now, &frame)

	// A repeat at t+80ms pushes expiry to t+180ms.
	frame.Clear()
	h.KeyDown(core.ActionLeft, now.Add(80*time.Millisecond), &frame)

	frame.Clear()
	h.Tick(now.Add(150*time.Millisecond), &frame)
	if frame.Up(core.ActionLeft) {
		t.Error("refreshed hold must not expire on the old deadline")
	}

	frame.Clear()
	h.Tick(now.Add(181*time.Millisecond), &frame)
	if !frame.Up(core.ActionLeft) {
		t.Error("expected release on the refreshed deadline")
	}
}

func TestKeyHoldReleaseAll(t *testing.T) {
	h := NewKeyHold(time.Second)
	now := time.Now()

	frame := core.NewInputFrame()
	h.KeyDown(core.ActionUp, now, &frame)
	h.KeyDown(core.ActionRight, now, &frame)

	frame.Clear()
	h.ReleaseAll(&frame)

	if !frame.Up(core.ActionUp) || !frame.Up(core.ActionRight) {
		t.Error("expected release edges for every held action")
	}
	if h.Held(core.ActionUp) || h.Held(core.ActionRight) {
		t.Error("no action should remain held")
	}
}

func TestKeyHoldDefaultTTL(t *testing.T) {
	h := NewKeyHold(0)
	if h.ttl != DefaultHoldTTL {
		t.Errorf("zero TTL should fall back to the default, got %v", h.ttl)
	}
}
