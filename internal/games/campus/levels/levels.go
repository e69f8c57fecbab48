// Package levels provides level descriptor loading for the campus game.
// This package depends on nothing from the game itself so the game can
// consume descriptors without import cycles.
package levels

import (
	"fmt"
)

// Default descriptor knobs, applied when a field is omitted.
const (
	DefaultScale    = 5.0  // entity size = viewport height / scale
	DefaultStep     = 240  // per-axis step = viewport dimension / step factor
	DefaultAnimRate = 8    // ticks between animation frames
)

// Kind identifies the entity variant a descriptor instantiates.
type Kind string

const (
	KindPlayer     Kind = "player"
	KindNPC        Kind = "npc"
	KindBackground Kind = "background"
)

// Sprite describes per-direction animation frames as multi-line rune art.
// Frame keys are direction names: "up", "down", "left", "right".
type Sprite struct {
	Rate   int                 `yaml:"rate,omitempty"`
	Color  string              `yaml:"color,omitempty"`
	Frames map[string][]string `yaml:"frames"`
}

// FrameCount returns the total number of frames across all directions.
func (s Sprite) FrameCount() int {
	n := 0
	for _, frames := range s.Frames {
		n += len(frames)
	}
	return n
}

// Quiz is the question set attached to a stationary entity.
type Quiz struct {
	Title     string   `yaml:"title"`
	Questions []string `yaml:"questions"`
}

// Position is the initial entity position as fractions of the viewport.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Inset shrinks the entity's collision rectangle by fractions of its
// width and height ("hitbox inset"). Zero means the full rectangle.
type Inset struct {
	W float64 `yaml:"w,omitempty"`
	H float64 `yaml:"h,omitempty"`
}

// Keys overrides the default direction key bindings for a movable entity.
type Keys struct {
	Up    string `yaml:"up,omitempty"`
	Down  string `yaml:"down,omitempty"`
	Left  string `yaml:"left,omitempty"`
	Right string `yaml:"right,omitempty"`
}

// Descriptor describes one entity to instantiate when a level loads.
type Descriptor struct {
	ID     string   `yaml:"id"`
	Kind   Kind     `yaml:"kind"`
	Scale  float64  `yaml:"scale,omitempty"`
	Step   float64  `yaml:"step,omitempty"`
	Sprite Sprite   `yaml:"sprite"`
	Pos    Position `yaml:"pos"`
	Inset  Inset    `yaml:"inset,omitempty"`
	Quiz   *Quiz    `yaml:"quiz,omitempty"`
	Keys   *Keys    `yaml:"keys,omitempty"`
}

// Level is a complete level definition: an ordered entity table.
// Entity order matters; it is the registry insertion (and update) order.
type Level struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Entities []Descriptor `yaml:"entities"`
	FilePath string       `yaml:"-"`
}

// applyDefaults fills omitted descriptor knobs in place.
func (d *Descriptor) applyDefaults() {
	if d.Scale <= 0 {
		d.Scale = DefaultScale
	}
	if d.Step <= 0 {
		d.Step = DefaultStep
	}
	if d.Sprite.Rate <= 0 {
		d.Sprite.Rate = DefaultAnimRate
	}
}

// Validate checks structural requirements: a non-empty ID, exactly one
// player entity, and at least one sprite frame for every visible entity.
func (l *Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("levels: level has no id")
	}

	players := 0
	seen := make(map[string]bool, len(l.Entities))
	for i := range l.Entities {
		d := &l.Entities[i]
		if d.ID == "" {
			return fmt.Errorf("levels: level %s: entity %d has no id", l.ID, i)
		}
		if seen[d.ID] {
			return fmt.Errorf("levels: level %s: duplicate entity id %q", l.ID, d.ID)
		}
		seen[d.ID] = true

		switch d.Kind {
		case KindPlayer:
			players++
		case KindNPC, KindBackground:
		default:
			return fmt.Errorf("levels: level %s: entity %q has unknown kind %q", l.ID, d.ID, d.Kind)
		}

		if d.Sprite.FrameCount() == 0 {
			return fmt.Errorf("levels: level %s: entity %q has no sprite frames", l.ID, d.ID)
		}

		d.applyDefaults()
	}

	if players != 1 {
		return fmt.Errorf("levels: level %s: expected exactly one player entity, got %d", l.ID, players)
	}

	return nil
}
