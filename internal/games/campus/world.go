package campus

import (
	"math/rand"
)

// World is the shared context for one level: the ordered entity registry,
// the viewport geometry, the seeded RNG, and the level-continue flag.
// It is owned by the game loop; the level loader inserts entities and
// entities remove themselves on destroy. All access happens on the single
// simulation goroutine — input arrives through the per-tick InputFrame, so
// no locking is needed here.
type World struct {
	W, H float64 // viewport dimensions in cells

	rng      *rand.Rand
	entities []Entity
	cont     bool
	tick     uint64
}

// NewWorld creates an empty world for the given viewport and seed.
func NewWorld(w, h float64, seed int64) *World {
	return &World{
		W:    w,
		H:    h,
		rng:  rand.New(rand.NewSource(seed)),
		cont: true,
	}
}

// Rand returns the world's RNG (used for quiz shuffling at load time).
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Tick returns the current tick counter.
func (w *World) Tick() uint64 {
	return w.tick
}

// Advance increments the tick counter. Called once per simulation step.
func (w *World) Advance() {
	w.tick++
}

// Add appends an entity to the registry. Insertion order is update and
// draw order.
func (w *World) Add(e Entity) {
	w.entities = append(w.entities, e)
}

// Remove deletes the entity with the given ID from the registry.
// Returns false if no such entity exists, making removal idempotent.
func (w *World) Remove(id string) bool {
	for i, e := range w.entities {
		if e.ID() == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	return false
}

// ByID returns the entity with the given ID, or nil.
func (w *World) ByID(id string) Entity {
	for _, e := range w.entities {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// Entities returns a snapshot copy of the registry. Iterating the snapshot
// is safe even when entities remove themselves mid-iteration (teardown).
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Continue reports the level-continue flag. The game loop consults it at
// the top of each tick.
func (w *World) Continue() bool {
	return w.cont
}

// RequestEnd clears the level-continue flag. Takes effect at the top of the
// next tick, never mid-tick.
func (w *World) RequestEnd() {
	w.cont = false
}

// Resize updates the viewport geometry and rescales every entity by the
// ratio of new to old dimensions. Calling it again with the same dimensions
// is a no-op.
func (w *World) Resize(newW, newH float64) {
	oldW, oldH := w.W, w.H
	if oldW == newW && oldH == newH {
		return
	}
	w.W, w.H = newW, newH
	for _, e := range w.Entities() {
		e.Resize(oldW, oldH, newW, newH)
	}
}
