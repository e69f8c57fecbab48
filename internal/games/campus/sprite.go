package campus

import (
	"fmt"
	"strings"

	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

// Direction represents an entity's facing direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a direction name used in level files.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirDown, false
}

// Frame is one animation frame: rows of rune art.
type Frame [][]rune

// Sprite holds per-direction animation frames and the animation rate
// (ticks between frame advances).
type Sprite struct {
	Rate   int
	Color  core.Color
	frames map[Direction][]Frame
}

// NewSprite converts a level sprite descriptor. A descriptor with no frames
// at all is a fatal configuration error: the entity cannot be constructed.
func NewSprite(src levels.Sprite) (Sprite, error) {
	s := Sprite{
		Rate:   src.Rate,
		frames: make(map[Direction][]Frame),
	}

	if c, ok := core.ParseColor(src.Color); ok {
		s.Color = c
	}

	for name, arts := range src.Frames {
		dir, ok := ParseDirection(name)
		if !ok {
			return Sprite{}, fmt.Errorf("campus: unknown sprite direction %q", name)
		}
		for _, art := range arts {
			var frame Frame
			for _, row := range strings.Split(art, "\n") {
				frame = append(frame, []rune(row))
			}
			s.frames[dir] = append(s.frames[dir], frame)
		}
	}

	if s.total() == 0 {
		return Sprite{}, fmt.Errorf("campus: sprite has no frames")
	}

	return s, nil
}

func (s Sprite) total() int {
	n := 0
	for _, f := range s.frames {
		n += len(f)
	}
	return n
}

// FrameCount returns the number of frames for a direction, following the
// same fallback as Frame.
func (s Sprite) FrameCount(dir Direction) int {
	return len(s.framesFor(dir))
}

// Frame returns the frame at index idx (modulo the frame count) for the
// given direction. Directions without frames fall back to DirDown, then to
// any direction that has frames.
func (s Sprite) Frame(dir Direction, idx int) Frame {
	frames := s.framesFor(dir)
	if len(frames) == 0 {
		return nil
	}
	if idx < 0 {
		idx = -idx
	}
	return frames[idx%len(frames)]
}

func (s Sprite) framesFor(dir Direction) []Frame {
	if f := s.frames[dir]; len(f) > 0 {
		return f
	}
	if f := s.frames[DirDown]; len(f) > 0 {
		return f
	}
	for _, d := range []Direction{DirUp, DirLeft, DirRight} {
		if f := s.frames[d]; len(f) > 0 {
			return f
		}
	}
	return nil
}
