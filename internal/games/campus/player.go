package campus

import (
	"github.com/andrewmow/quizwalk/internal/games/campus/levels"
)

// Player is the movable entity. Velocity comes from direction key edges:
// a key-down sets the matching axis to the fixed per-axis step, a key-up
// zeroes it (or hands the axis to the opposite key if that is still held).
// Simultaneous keys compose, so diagonal movement works.
type Player struct {
	object

	dx, dy     float64
	stepX      float64 // viewport width / step factor
	stepY      float64 // viewport height / step factor
	stepFactor float64

	held     [4]bool // indexed by Direction, guards terminal auto-repeat
	blocked  [4]bool // movement permission per direction, rebuilt each tick
	touching []string
}

// NewPlayer builds the movable entity from a descriptor.
func NewPlayer(d levels.Descriptor, viewW, viewH float64) (*Player, error) {
	obj, err := newObject(d, viewW, viewH)
	if err != nil {
		return nil, err
	}

	return &Player{
		object:     obj,
		stepX:      viewW / d.Step,
		stepY:      viewH / d.Step,
		stepFactor: d.Step,
	}, nil
}

func (p *Player) Solid() bool {
	return true
}

// Touching returns the IDs of entities currently in contact, in registry
// evaluation order. Valid until the next Update.
func (p *Player) Touching() []string {
	return p.touching
}

// Velocity returns the current per-tick velocity.
func (p *Player) Velocity() (dx, dy float64) {
	return p.dx, p.dy
}

// Step returns the per-axis step velocities.
func (p *Player) Step() (x, y float64) {
	return p.stepX, p.stepY
}

// Blocked reports whether movement in the given direction was blocked by a
// collision during the last Update.
func (p *Player) Blocked(dir Direction) bool {
	return p.blocked[dir]
}

// KeyDown handles a direction key press. Repeats while the key is held are
// ignored so auto-repeat does not re-trigger the edge.
func (p *Player) KeyDown(dir Direction) {
	if p.held[dir] {
		return
	}
	p.held[dir] = true
	p.facing = dir

	switch dir {
	case DirUp:
		p.dy = -p.stepY
	case DirDown:
		p.dy = p.stepY
	case DirLeft:
		p.dx = -p.stepX
	case DirRight:
		p.dx = p.stepX
	}
}

// KeyUp handles a direction key release: the axis is zeroed, unless the
// opposite key is still held, in which case that key takes the axis over.
func (p *Player) KeyUp(dir Direction) {
	if !p.held[dir] {
		return
	}
	p.held[dir] = false

	switch dir {
	case DirUp:
		if p.held[DirDown] {
			p.dy = p.stepY
		} else {
			p.dy = 0
		}
	case DirDown:
		if p.held[DirUp] {
			p.dy = -p.stepY
		} else {
			p.dy = 0
		}
	case DirLeft:
		if p.held[DirRight] {
			p.dx = p.stepX
		} else {
			p.dx = 0
		}
	case DirRight:
		if p.held[DirLeft] {
			p.dx = -p.stepX
		} else {
			p.dx = 0
		}
	}
}

// Update runs the collision pass against every other solid entity, zeroes
// velocity on blocked axes, integrates velocity into position, clamps to
// the viewport (zeroing velocity on a clamped axis), and animates.
func (p *Player) Update(w *World) {
	p.blocked = [4]bool{}
	p.touching = p.touching[:0]

	self := Body{Rect: p.Rect(), InsetW: p.insetW, InsetH: p.insetH}
	for _, e := range w.Entities() {
		if e.ID() == p.id || !e.Solid() {
			continue
		}

		iw, ih := e.Insets()
		res := Collide(self, Body{Rect: e.Rect(), InsetW: iw, InsetH: ih})

		if res.Hit || res.A.Any() {
			p.touching = append(p.touching, e.ID())
		}

		// Contact flags from every partner are OR-merged; a later pair
		// cannot clear a block set by an earlier one.
		if res.Hit {
			if res.A.Top {
				p.blocked[DirUp] = true
			}
			if res.A.Bottom {
				p.blocked[DirDown] = true
			}
			if res.A.Left {
				p.blocked[DirLeft] = true
			}
			if res.A.Right {
				p.blocked[DirRight] = true
			}
		}
	}

	if p.dy < 0 && p.blocked[DirUp] {
		p.dy = 0
	}
	if p.dy > 0 && p.blocked[DirDown] {
		p.dy = 0
	}
	if p.dx < 0 && p.blocked[DirLeft] {
		p.dx = 0
	}
	if p.dx > 0 && p.blocked[DirRight] {
		p.dx = 0
	}

	moving := p.dx != 0 || p.dy != 0

	p.x += p.dx
	p.y += p.dy

	// Keep the full rectangle inside the viewport.
	maxX := w.W - p.size
	if maxX < 0 {
		maxX = 0
	}
	maxY := w.H - p.size
	if maxY < 0 {
		maxY = 0
	}
	if p.x < 0 {
		p.x = 0
		p.dx = 0
	} else if p.x > maxX {
		p.x = maxX
		p.dx = 0
	}
	if p.y < 0 {
		p.y = 0
		p.dy = 0
	} else if p.y > maxY {
		p.y = maxY
		p.dy = 0
	}

	if moving {
		p.animate(w.Tick())
	}
}

// Resize rescales size and position like every entity, plus the per-axis
// step velocities and the current velocity, proportionally to the new
// viewport dimensions.
func (p *Player) Resize(oldW, oldH, newW, newH float64) {
	if oldW == newW && oldH == newH {
		return
	}
	p.object.Resize(oldW, oldH, newW, newH)
	p.stepX = newW / p.stepFactor
	p.stepY = newH / p.stepFactor
	p.dx *= newW / oldW
	p.dy *= newH / oldH
}
