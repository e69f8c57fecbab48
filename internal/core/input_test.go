package core

import "testing"

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()

	if f.Down(ActionUp) || f.Up(ActionUp) {
		t.Fatal("empty frame should have no edges")
	}

	f.Press(ActionUp)
	f.Release(ActionLeft)

	if !f.Down(ActionUp) {
		t.Error("expected down edge for up")
	}
	if f.Down(ActionLeft) {
		t.Error("release must not set a down edge")
	}
	if !f.Up(ActionLeft) {
		t.Error("expected up edge for left")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero frame must be safe to query and to write to.
	var f InputFrame

	if f.Down(ActionUp) || f.Up(ActionUp) {
		t.Error("zero frame should report no edges")
	}

	f.Press(ActionDown)
	f.Release(ActionDown)
	f.Type('x')

	if !f.Down(ActionDown) || !f.Up(ActionDown) {
		t.Error("zero frame should accept edges")
	}
	if len(f.Runes) != 1 || f.Runes[0] != 'x' {
		t.Errorf("unexpected runes: %v", f.Runes)
	}
}

func TestInputFrameType(t *testing.T) {
	f := NewInputFrame()
	for _, r := range "abc" {
		f.Type(r)
	}

	if string(f.Runes) != "abc" {
		t.Errorf("expected runes in typing order, got %q", string(f.Runes))
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionUp)
	f.Release(ActionDown)
	f.Type('z')

	f.Clear()

	if f.Down(ActionUp) || f.Up(ActionDown) || len(f.Runes) != 0 {
		t.Errorf("clear should drop all edges and runes: %+v", f)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionUp)
	f.Type('a')

	c := f.Clone()
	f.Clear()
	f.Press(ActionDown)

	if !c.Down(ActionUp) || c.Down(ActionDown) {
		t.Error("clone should be independent of the original")
	}
	if string(c.Runes) != "a" {
		t.Errorf("clone lost runes: %q", string(c.Runes))
	}
}

func TestActionString(t *testing.T) {
	if ActionInteract.String() != "Interact" {
		t.Errorf("unexpected name: %s", ActionInteract)
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("unexpected name for out-of-range action: %s", Action(999))
	}
}
