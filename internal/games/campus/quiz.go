package campus

import (
	"math/rand"

	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

// Quiz is the question set an NPC poses. Questions are shuffled once at
// construction with the world RNG, so the order is deterministic per seed
// but varies between runs.
type Quiz struct {
	Title     string
	Questions []string
}

// NewQuiz copies the level quiz and shuffles the question order.
func NewQuiz(src levels.Quiz, rng *rand.Rand) Quiz {
	q := Quiz{
		Title:     src.Title,
		Questions: make([]string, len(src.Questions)),
	}
	copy(q.Questions, src.Questions)
	rng.Shuffle(len(q.Questions), func(i, j int) {
		q.Questions[i], q.Questions[j] = q.Questions[j], q.Questions[i]
	})
	return q
}

// Empty reports whether the quiz has no questions.
func (q Quiz) Empty() bool {
	return len(q.Questions) == 0
}
