package campus

import (
	"math/rand"

	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

// NPC is a stationary tutor entity. It blocks movement and carries the quiz
// the interaction panel presents when the player talks to it.
type NPC struct {
	object

	quiz Quiz
}

// NewNPC builds a tutor from a descriptor. The quiz questions are shuffled
// with the world RNG at construction time.
func NewNPC(d levels.Descriptor, viewW, viewH float64, rng *rand.Rand) (*NPC, error) {
	obj, err := newObject(d, viewW, viewH)
	if err != nil {
		return nil, err
	}

	n := &NPC{object: obj}
	if d.Quiz != nil {
		n.quiz = NewQuiz(*d.Quiz, rng)
	}
	return n, nil
}

func (n *NPC) Solid() bool {
	return true
}

// Quiz returns the tutor's shuffled question set.
func (n *NPC) Quiz() Quiz {
	return n.quiz
}

func (n *NPC) Update(w *World) {
	n.animate(w.Tick())
}
