package campus

import (
	"github.com/andrewmow/quizwalk/internal/core"
)

// Body is the collision view of an entity: its screen rectangle plus the
// fractional hitbox insets applied before testing.
type Body struct {
	Rect   core.RectF
	InsetW float64 // fraction of width shaved off each vertical edge
	InsetH float64 // fraction of height shaved off the top edge
}

// hitbox returns the inset rectangle. Left and right edges move inward by
// width·InsetW, the top edge moves down by height·InsetH. The bottom edge is
// never inset, so "feet" contact stays exact.
func (b Body) hitbox() core.RectF {
	wi := b.Rect.W * b.InsetW
	hi := b.Rect.H * b.InsetH
	return core.RectF{
		X: b.Rect.X + wi,
		Y: b.Rect.Y + hi,
		W: b.Rect.W - 2*wi,
		H: b.Rect.H - hi,
	}
}

// Sides flags which sides of an entity are in contact with another.
type Sides struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether any side is flagged.
func (s Sides) Any() bool {
	return s.Top || s.Bottom || s.Left || s.Right
}

// Merge ORs another flag set into this one. Used to combine contacts from
// multiple simultaneous partners within one tick instead of letting the
// last-evaluated pair overwrite earlier ones.
func (s *Sides) Merge(o Sides) {
	s.Top = s.Top || o.Top
	s.Bottom = s.Bottom || o.Bottom
	s.Left = s.Left || o.Left
	s.Right = s.Right || o.Right
}

// Result is the outcome of one pairwise collision test. Ephemeral: it is
// recomputed every tick and never persisted.
type Result struct {
	Hit bool  // AABB overlap of the two hitboxes
	A   Sides // touching sides of the first body
	B   Sides // touching sides of the second body
}

// Collide tests two bodies. Hit uses open intervals: hitboxes whose edges
// exactly touch do not overlap. Side flags are standalone edge-proximity
// tests, so exact adjacency can flag a side even when Hit is false.
func Collide(a, b Body) Result {
	ra := a.hitbox()
	rb := b.hitbox()

	hit := ra.X < rb.Right() && ra.Right() > rb.X &&
		ra.Y < rb.Bottom() && ra.Bottom() > rb.Y

	return Result{
		Hit: hit,
		A:   sides(ra, rb),
		B:   sides(rb, ra),
	}
}

// sides computes which edges of rectangle a are touching rectangle b.
// Each test requires the other rectangle's opposite edge to be on the
// correct side with the near edges at least adjacent, and the ranges on the
// perpendicular axis to overlap.
func sides(a, b core.RectF) Sides {
	overlapX := a.X < b.Right() && a.Right() > b.X
	overlapY := a.Y < b.Bottom() && a.Bottom() > b.Y

	return Sides{
		Bottom: a.Bottom() >= b.Y && a.Y < b.Y && overlapX,
		Top:    a.Y <= b.Bottom() && a.Bottom() > b.Bottom() && overlapX,
		Right:  a.Right() >= b.X && a.X < b.X && overlapY,
		Left:   a.X <= b.Right() && a.Right() > b.Right() && overlapY,
	}
}
