package campus

import (
	"math/rand"
	"testing"

	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

func testNPC(t *testing.T, id string, questions ...string) *NPC {
	t.Helper()
	d := testDescriptor(id, levels.KindNPC)
	d.Quiz = &levels.Quiz{Title: "Office Hours", Questions: questions}
	n, err := NewNPC(d, 1000, 800, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewNPC() failed: %v", err)
	}
	return n
}

func typeText(p *Panel, s string) {
	var in core.InputFrame
	for _, r := range s {
		in.Type(r)
	}
	p.Input(in)
}

func press(p *Panel, a core.Action) ([]Answer, PanelEvent) {
	var in core.InputFrame
	in.Press(a)
	return p.Input(in)
}

func TestPanelOpenClose(t *testing.T) {
	var p Panel
	if p.IsOpen() {
		t.Fatal("zero panel should be closed")
	}

	p.Open(testNPC(t, "tutor", "what is a stack?"))
	if !p.IsOpen() {
		t.Fatal("panel should be open")
	}

	p.Close()
	p.Close()
	if p.IsOpen() || p.NPC() != nil {
		t.Error("panel should be closed with no tutor")
	}
}

func TestPanelTyping(t *testing.T) {
	var p Panel
	p.Open(testNPC(t, "tutor", "q1"))

	typeText(&p, "LIFO")
	answers, ev := press(&p, core.ActionSubmit)
	if ev != PanelSubmitted {
		t.Fatalf("expected submit event, got %v", ev)
	}
	if len(answers) != 1 || answers[0].Text != "LIFO" {
		t.Errorf("unexpected answers: %+v", answers)
	}
	if p.IsOpen() {
		t.Error("panel should close on submit")
	}
}

func TestPanelFocusAdvanceAndWrap(t *testing.T) {
	var p Panel
	p.Open(testNPC(t, "tutor", "q1", "q2"))

	typeText(&p, "a")
	press(&p, core.ActionConfirm)
	typeText(&p, "b")
	press(&p, core.ActionConfirm) // wraps back to the first field
	typeText(&p, "c")

	answers, ev := press(&p, core.ActionSubmit)
	if ev != PanelSubmitted {
		t.Fatalf("expected submit event, got %v", ev)
	}

	got := map[string]string{}
	for _, a := range answers {
		got[a.Question] = a.Text
	}
	if got["q1"] != "ac" || got["q2"] != "b" {
		t.Errorf("unexpected answers: %v", got)
	}
}

func TestPanelErase(t *testing.T) {
	var p Panel
	p.Open(testNPC(t, "tutor", "q1"))

	typeText(&p, "heap")
	press(&p, core.ActionErase)
	press(&p, core.ActionErase)

	answers, _ := press(&p, core.ActionSubmit)
	if answers[0].Text != "he" {
		t.Errorf("expected \"he\" after two erases, got %q", answers[0].Text)
	}

	// Erasing an empty field is a no-op.
	p.Open(testNPC(t, "tutor", "q1"))
	press(&p, core.ActionErase)
	answers, _ = press(&p, core.ActionSubmit)
	if answers[0].Text != "" {
		t.Errorf("expected empty answer, got %q", answers[0].Text)
	}
}

func TestPanelDismiss(t *testing.T) {
	var p Panel
	p.Open(testNPC(t, "tutor", "q1"))
	typeText(&p, "discarded")

	answers, ev := press(&p, core.ActionExit)
	if ev != PanelDismissed {
		t.Fatalf("expected dismiss event, got %v", ev)
	}
	if answers != nil {
		t.Errorf("dismiss must not return answers, got %+v", answers)
	}
	if p.IsOpen() {
		t.Error("panel should close on dismiss")
	}
}

func TestPanelReopenDiscardsState(t *testing.T) {
	var p Panel
	p.Open(testNPC(t, "first", "q1"))
	typeText(&p, "stale")

	second := testNPC(t, "second", "q1", "q2")
	p.Open(second)

	if p.NPC() != second {
		t.Fatal("panel should be showing the second tutor")
	}

	answers, _ := press(&p, core.ActionSubmit)
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	for _, a := range answers {
		if a.Text != "" {
			t.Errorf("reopened panel carried stale text: %+v", a)
		}
	}
}

func TestPanelClosedIgnoresInput(t *testing.T) {
	var p Panel
	if answers, ev := press(&p, core.ActionSubmit); ev != PanelNone || answers != nil {
		t.Errorf("closed panel must ignore input, got %v / %+v", ev, answers)
	}
}
