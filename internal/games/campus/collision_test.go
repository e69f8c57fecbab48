package campus

import (
	"testing"

	"github.com/andrewmow/quizwalk/internal/core"
)

func body(x, y, w, h float64) Body {
	return Body{Rect: core.RectF{X: x, Y: y, W: w, H: h}}
}

func TestCollideOverlap(t *testing.T) {
	a := body(0, 0, 50, 50)
	b := body(40, 40, 50, 50)

	res := Collide(a, b)
	if !res.Hit {
		t.Fatal("expected overlapping rectangles to hit")
	}

	// a overlaps b's top-left corner: contact on a's bottom and right
	if !res.A.Bottom || !res.A.Right {
		t.Errorf("expected bottom+right contact for a, got %+v", res.A)
	}
	if res.A.Top || res.A.Left {
		t.Errorf("unexpected top/left contact for a: %+v", res.A)
	}

	// and the mirror for b
	if !res.B.Top || !res.B.Left {
		t.Errorf("expected top+left contact for b, got %+v", res.B)
	}
}

func TestCollideSymmetry(t *testing.T) {
	a := body(0, 0, 50, 50)
	b := body(40, 40, 50, 50)

	ab := Collide(a, b)
	ba := Collide(b, a)

	if ab.Hit != ba.Hit {
		t.Errorf("hit not symmetric: %v vs %v", ab.Hit, ba.Hit)
	}
	if ab.A != ba.B || ab.B != ba.A {
		t.Errorf("sides not mirrored: %+v/%+v vs %+v/%+v", ab.A, ab.B, ba.A, ba.B)
	}
}

func TestCollideDisjoint(t *testing.T) {
	a := body(0, 0, 10, 10)
	b := body(100, 100, 10, 10)

	res := Collide(a, b)
	if res.Hit {
		t.Error("expected no hit for disjoint rectangles")
	}
	if res.A.Any() || res.B.Any() {
		t.Errorf("expected no contact flags, got %+v / %+v", res.A, res.B)
	}
}

func TestCollideExactAdjacency(t *testing.T) {
	// Edges touch exactly: open-interval overlap says no hit, but the
	// side proximity test still flags the touching edge.
	a := body(0, 0, 50, 50)
	b := body(50, 0, 50, 50)

	res := Collide(a, b)
	if res.Hit {
		t.Error("exactly adjacent hitboxes must not hit (open intervals)")
	}
	if !res.A.Right {
		t.Errorf("expected right contact for a, got %+v", res.A)
	}
	if !res.B.Left {
		t.Errorf("expected left contact for b, got %+v", res.B)
	}
}

func TestCollideVerticalAdjacency(t *testing.T) {
	a := body(0, 0, 50, 50)
	b := body(0, 50, 50, 50)

	res := Collide(a, b)
	if res.Hit {
		t.Error("exactly adjacent hitboxes must not hit")
	}
	if !res.A.Bottom {
		t.Errorf("expected bottom contact for a, got %+v", res.A)
	}
	if !res.B.Top {
		t.Errorf("expected top contact for b, got %+v", res.B)
	}
}

func TestHitboxInsets(t *testing.T) {
	// 100x100 rect with 10% width inset: hitbox spans x in [10, 90].
	a := Body{Rect: core.RectF{X: 0, Y: 0, W: 100, H: 100}, InsetW: 0.1}
	hb := a.hitbox()

	if hb.X != 10 || hb.W != 80 {
		t.Errorf("expected hitbox x=10 w=80, got x=%v w=%v", hb.X, hb.W)
	}

	// Height inset moves only the top edge; the bottom edge stays put.
	b := Body{Rect: core.RectF{X: 0, Y: 0, W: 100, H: 100}, InsetH: 0.2}
	hb = b.hitbox()

	if hb.Y != 20 {
		t.Errorf("expected hitbox y=20, got %v", hb.Y)
	}
	if hb.Bottom() != 100 {
		t.Errorf("bottom edge must not be inset: got %v", hb.Bottom())
	}
}

func TestInsetsPreventShallowOverlap(t *testing.T) {
	// Rectangles overlap by 5 on x, but each sheds 10 per side: no hit.
	a := Body{Rect: core.RectF{X: 0, Y: 0, W: 100, H: 100}, InsetW: 0.1}
	b := Body{Rect: core.RectF{X: 95, Y: 0, W: 100, H: 100}, InsetW: 0.1}

	if res := Collide(a, b); res.Hit {
		t.Error("inset hitboxes should not overlap")
	}

	// Without insets the same rectangles hit.
	a.InsetW, b.InsetW = 0, 0
	if res := Collide(a, b); !res.Hit {
		t.Error("full rectangles should overlap")
	}
}

func TestSidesMerge(t *testing.T) {
	s := Sides{Top: true}
	s.Merge(Sides{Left: true})
	s.Merge(Sides{})

	if !s.Top || !s.Left {
		t.Errorf("merge must OR flags, got %+v", s)
	}
	if s.Bottom || s.Right {
		t.Errorf("merge must not set unrelated flags, got %+v", s)
	}
}
