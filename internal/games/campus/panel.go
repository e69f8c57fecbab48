package campus

import (
	"github.com/andrewmow/quizwalk/internal/core"
)

// PanelEvent is the outcome of feeding one input frame to an open panel.
type PanelEvent int

const (
	// PanelNone means the panel consumed the input and stays open.
	PanelNone PanelEvent = iota
	// PanelSubmitted means the answers were submitted and the panel closed.
	PanelSubmitted
	// PanelDismissed means the panel closed without submitting.
	PanelDismissed
)

// Answer pairs a quiz question with the text the player typed for it.
type Answer struct {
	Question string
	Text     string
}

// Panel is the modal answer sheet shown when the player interacts with a
// tutor. While open it owns all input: printable keys edit the focused
// answer, enter moves focus to the next question, ctrl+u submits, escape
// dismisses. Opening it over an already-open panel force-closes the old one
// first, so at most one panel exists at a time.
type Panel struct {
	npc     *NPC
	answers []string
	focus   int
	open    bool
}

// Open shows the panel for the given tutor, discarding any panel that was
// already open.
func (p *Panel) Open(n *NPC) {
	p.Close()
	p.npc = n
	p.answers = make([]string, len(n.Quiz().Questions))
	p.focus = 0
	p.open = true
}

// Close hides the panel and drops its contents. Idempotent.
func (p *Panel) Close() {
	p.npc = nil
	p.answers = nil
	p.focus = 0
	p.open = false
}

// IsOpen reports whether the panel is showing.
func (p *Panel) IsOpen() bool {
	return p.open
}

// NPC returns the tutor the panel is open for, or nil.
func (p *Panel) NPC() *NPC {
	return p.npc
}

// Input feeds one frame to the panel. On submit the collected answers are
// returned alongside PanelSubmitted; otherwise the slice is nil.
func (p *Panel) Input(in core.InputFrame) ([]Answer, PanelEvent) {
	if !p.open {
		return nil, PanelNone
	}

	switch {
	case in.Down(core.ActionExit):
		p.Close()
		return nil, PanelDismissed

	case in.Down(core.ActionSubmit):
		quiz := p.npc.Quiz()
		out := make([]Answer, len(p.answers))
		for i, text := range p.answers {
			out[i] = Answer{Question: quiz.Questions[i], Text: text}
		}
		p.Close()
		return out, PanelSubmitted

	case in.Down(core.ActionConfirm):
		if len(p.answers) > 0 {
			p.focus = (p.focus + 1) % len(p.answers)
		}

	case in.Down(core.ActionErase):
		if p.focus < len(p.answers) {
			if cur := []rune(p.answers[p.focus]); len(cur) > 0 {
				p.answers[p.focus] = string(cur[:len(cur)-1])
			}
		}
	}

	if p.focus < len(p.answers) && len(in.Runes) > 0 {
		p.answers[p.focus] += string(in.Runes)
	}

	return nil, PanelNone
}

// Draw renders the panel as a centered overlay box: quiz title, then each
// question with its answer line, the focused one marked with a caret.
func (p *Panel) Draw(dst *core.Screen) {
	if !p.open {
		return
	}

	quiz := p.npc.Quiz()

	boxW := dst.Width() * 3 / 4
	if boxW < 24 {
		boxW = dst.Width()
	}
	boxH := 4 + len(quiz.Questions)*3
	if boxH > dst.Height() {
		boxH = dst.Height()
	}
	x0 := (dst.Width() - boxW) / 2
	y0 := (dst.Height() - boxH) / 2

	dst.DrawBox(core.Rect{X: x0, Y: y0, W: boxW, H: boxH})
	for yy := y0 + 1; yy < y0+boxH-1; yy++ {
		for xx := x0 + 1; xx < x0+boxW-1; xx++ {
			dst.Set(xx, yy, ' ')
		}
	}

	dst.DrawTextColored(x0+2, y0+1, quiz.Title, core.ColorYellow)

	y := y0 + 3
	for i, q := range quiz.Questions {
		if y >= y0+boxH-1 {
			break
		}
		dst.DrawText(x0+2, y, trimTo(q, boxW-4))
		y++
		if y >= y0+boxH-1 {
			break
		}
		marker := "  "
		color := core.ColorGray
		if i == p.focus {
			marker = "> "
			color = core.ColorCyan
		}
		line := marker + p.answers[i]
		if i == p.focus {
			line += "_"
		}
		dst.DrawTextColored(x0+2, y, trimTo(line, boxW-4), color)
		y += 2
	}

	hint := "enter: next  ctrl+u: submit  esc: cancel"
	dst.DrawTextColored(x0+2, y0+boxH-2, trimTo(hint, boxW-4), core.ColorGray)
}

func trimTo(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
