package campus

import (
	"fmt"

	"github.com/andrewmow/quizwalk/internal/core"
	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

// Entity is any drawable, updatable game actor. The interface replaces the
// original base-class-with-throwing-stubs design: the type system enforces
// that every variant implements the full operation set.
type Entity interface {
	// ID returns the entity's unique identifier within its level.
	ID() string

	// Kind returns the descriptor kind this entity was built from.
	Kind() levels.Kind

	// Rect returns the entity's current screen rectangle.
	Rect() core.RectF

	// Insets returns the fractional hitbox insets (width, height).
	Insets() (float64, float64)

	// Solid reports whether the entity participates in collision testing.
	Solid() bool

	// Update advances the entity by one tick: collision checks, velocity
	// integration, viewport clamping, and animation, as applicable.
	Update(w *World)

	// Draw renders the current animation frame into the screen buffer.
	Draw(dst *core.Screen)

	// Resize rescales size, position and step velocity by the ratio of new
	// to old viewport dimensions. Idempotent for identical dimensions.
	Resize(oldW, oldH, newW, newH float64)

	// Destroy removes the entity from the registry. Safe to call more than
	// once; subsequent calls find nothing to remove.
	Destroy(w *World)
}

// object carries the state shared by all entity variants.
type object struct {
	id     string
	kind   levels.Kind
	x, y   float64
	size   float64 // viewport height / scale
	scale  float64
	insetW float64
	insetH float64
	sprite Sprite
	frame  int
	facing Direction
}

// newObject builds the shared entity state from a descriptor. A descriptor
// without sprite frames is a fatal configuration error.
func newObject(d levels.Descriptor, viewW, viewH float64) (object, error) {
	sprite, err := NewSprite(d.Sprite)
	if err != nil {
		return object{}, fmt.Errorf("campus: entity %q: %w", d.ID, err)
	}

	return object{
		id:     d.ID,
		kind:   d.Kind,
		x:      d.Pos.X * viewW,
		y:      d.Pos.Y * viewH,
		size:   viewH / d.Scale,
		scale:  d.Scale,
		insetW: d.Inset.W,
		insetH: d.Inset.H,
		sprite: sprite,
		facing: DirDown,
	}, nil
}

func (o *object) ID() string {
	return o.id
}

func (o *object) Kind() levels.Kind {
	return o.kind
}

func (o *object) Rect() core.RectF {
	return core.RectF{X: o.x, Y: o.y, W: o.size, H: o.size}
}

func (o *object) Insets() (float64, float64) {
	return o.insetW, o.insetH
}

// Resize recomputes size from the new viewport height and rescales the
// position by the exact ratio of new to old dimensions.
func (o *object) Resize(oldW, oldH, newW, newH float64) {
	if oldW == newW && oldH == newH {
		return
	}
	o.size = newH / o.scale
	o.x *= newW / oldW
	o.y *= newH / oldH
}

func (o *object) Destroy(w *World) {
	w.Remove(o.id)
}

// Draw renders the current frame's rune art at the entity rectangle,
// clipped to it. Space characters are transparent so sprites overlay the
// background cleanly.
func (o *object) Draw(dst *core.Screen) {
	frame := o.sprite.Frame(o.facing, o.frame)
	if frame == nil {
		return
	}

	r := o.Rect().Round()
	for row, line := range frame {
		if r.H > 0 && row >= r.H {
			break
		}
		for col, ch := range line {
			if ch == ' ' {
				continue
			}
			if r.W > 0 && col >= r.W {
				break
			}
			dst.SetCell(r.X+col, r.Y+row, core.Cell{Rune: ch, Color: o.sprite.Color})
		}
	}
}

// animate advances the frame index every sprite.Rate ticks.
func (o *object) animate(tick uint64) {
	if o.sprite.Rate <= 0 {
		return
	}
	if tick%uint64(o.sprite.Rate) == 0 {
		o.frame++
	}
}

// Background is a decorative entity: it draws but never moves and never
// collides.
type Background struct {
	object
}

// NewBackground builds a background entity from a descriptor.
func NewBackground(d levels.Descriptor, viewW, viewH float64) (*Background, error) {
	obj, err := newObject(d, viewW, viewH)
	if err != nil {
		return nil, err
	}
	return &Background{object: obj}, nil
}

func (b *Background) Solid() bool {
	return false
}

func (b *Background) Update(w *World) {
	b.animate(w.Tick())
}

// NewEntity instantiates the entity variant named by the descriptor kind.
func NewEntity(d levels.Descriptor, w *World) (Entity, error) {
	switch d.Kind {
	case levels.KindPlayer:
		return NewPlayer(d, w.W, w.H)
	case levels.KindNPC:
		return NewNPC(d, w.W, w.H, w.Rand())
	case levels.KindBackground:
		return NewBackground(d, w.W, w.H)
	default:
		return nil, fmt.Errorf("campus: entity %q: unknown kind %q", d.ID, d.Kind)
	}
}
