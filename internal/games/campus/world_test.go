package campus

import (
	"testing"

	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

func mustEntity(t *testing.T, w *World, id string, kind levels.Kind) Entity {
	t.Helper()
	e, err := NewEntity(testDescriptor(id, kind), w)
	if err != nil {
		t.Fatalf("NewEntity(%s) failed: %v", id, err)
	}
	return e
}

func TestWorldAddRemove(t *testing.T) {
	w := NewWorld(100, 80, 1)

	a := mustEntity(t, w, "a", levels.KindNPC)
	b := mustEntity(t, w, "b", levels.KindNPC)
	w.Add(a)
	w.Add(b)

	if w.Len() != 2 {
		t.Fatalf("expected 2 entities, got %d", w.Len())
	}
	if w.ByID("a") != a {
		t.Error("ByID returned wrong entity")
	}

	if !w.Remove("a") {
		t.Error("Remove() should report true for existing entity")
	}
	if w.Remove("a") {
		t.Error("Remove() should report false for missing entity")
	}
	if w.ByID("a") != nil {
		t.Error("removed entity still resolvable")
	}
	if w.Len() != 1 {
		t.Errorf("expected 1 entity, got %d", w.Len())
	}
}

func TestWorldEntitiesSnapshot(t *testing.T) {
	w := NewWorld(100, 80, 1)
	w.Add(mustEntity(t, w, "a", levels.KindNPC))
	w.Add(mustEntity(t, w, "b", levels.KindNPC))
	w.Add(mustEntity(t, w, "c", levels.KindNPC))

	// Removing entities mid-iteration must not disturb the snapshot.
	snapshot := w.Entities()
	for _, e := range snapshot {
		e.Destroy(w)
	}

	if len(snapshot) != 3 {
		t.Errorf("snapshot changed length: %d", len(snapshot))
	}
	if w.Len() != 0 {
		t.Errorf("expected empty world, got %d entities", w.Len())
	}
}

func TestWorldInsertionOrder(t *testing.T) {
	w := NewWorld(100, 80, 1)
	ids := []string{"bg", "npc1", "npc2", "player"}
	for _, id := range ids {
		w.Add(mustEntity(t, w, id, levels.KindNPC))
	}

	for i, e := range w.Entities() {
		if e.ID() != ids[i] {
			t.Errorf("position %d: expected %s, got %s", i, ids[i], e.ID())
		}
	}
}

func TestWorldContinueFlag(t *testing.T) {
	w := NewWorld(100, 80, 1)

	if !w.Continue() {
		t.Fatal("new world should continue")
	}

	w.RequestEnd()
	if w.Continue() {
		t.Error("continue flag should be cleared after RequestEnd")
	}
}

func TestWorldResize(t *testing.T) {
	w := NewWorld(1000, 800, 1)
	e := mustEntity(t, w, "a", levels.KindNPC)
	w.Add(e)

	w.Resize(500, 400)
	if w.W != 500 || w.H != 400 {
		t.Errorf("expected 500x400, got %vx%v", w.W, w.H)
	}

	r := e.Rect()
	if r.X != 250 || r.Y != 200 {
		t.Errorf("entity not rescaled: (%v,%v)", r.X, r.Y)
	}

	// Same dims: nothing moves.
	before := e.Rect()
	w.Resize(500, 400)
	if e.Rect() != before {
		t.Error("resize to identical dims changed an entity")
	}
}

func TestWorldTick(t *testing.T) {
	w := NewWorld(100, 80, 1)
	if w.Tick() != 0 {
		t.Fatalf("expected tick 0, got %d", w.Tick())
	}
	w.Advance()
	w.Advance()
	if w.Tick() != 2 {
		t.Errorf("expected tick 2, got %d", w.Tick())
	}
}
