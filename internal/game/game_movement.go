package game

import (
	"pacman/internal/entities"
	"pacman/internal/geom"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func axisOf(d entities.Direction) Axis {
	if d.Horizontal() {
		return AxisX
	}
	return AxisY
}

func component(p geom.Point, a Axis) float64 {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

func setComponent(p *geom.Point, a Axis, v float64) {
	if a == AxisX {
		p.X = v
	} else {
		p.Y = v
	}
}

// Resolver checks moving bodies against the obstacle field. Obstacles are
// scanned in a fixed order and the scan stops at the first hit.
type Resolver struct {
	boxes   []geom.Rect
	Padding float64
}

func NewResolver(obstacles []entities.Obstacle, padding float64) Resolver {
	boxes := make([]geom.Rect, len(obstacles))
	for i, o := range obstacles {
		boxes[i] = o.Bounds()
	}
	return Resolver{boxes: boxes, Padding: padding}
}

// WithPadding returns a resolver over the same obstacles with another margin.
func (r Resolver) WithPadding(padding float64) Resolver {
	r.Padding = padding
	return r
}

// Blocked reports whether a body at pos moving by vel would hit any obstacle.
func (r Resolver) Blocked(pos geom.Point, radius float64, vel geom.Point) bool {
	for _, box := range r.boxes {
		if geom.WouldCollide(pos, radius, vel, box, r.Padding) {
			return true
		}
	}
	return false
}

// Resolve applies the intent's axis component to the body's velocity, or
// zeroes that component if the full intent would run into a wall. The other
// component is left alone. It reports whether the intent was admitted.
func (r Resolver) Resolve(b *entities.Body, intent geom.Point, axis Axis) bool {
	if r.Blocked(b.Position, b.Radius, intent) {
		setComponent(&b.Velocity, axis, 0)
		return false
	}
	setComponent(&b.Velocity, axis, component(intent, axis))
	return true
}

// HandleBoundaries brings the body to a dead stop if moving by its current
// velocity would overlap a wall. It catches combined velocities the
// per-axis check never saw, such as a diagonal left over after a turn.
func (r Resolver) HandleBoundaries(b *entities.Body) bool {
	if r.Blocked(b.Position, b.Radius, b.Velocity) {
		b.Stop()
		return true
	}
	return false
}

func (s *Simulation) wallsFor(radius float64) Resolver {
	return s.walls.WithPadding(s.cfg.PaddingFor(radius))
}

func (s *Simulation) playerWalls() Resolver {
	return s.wallsFor(s.player.Radius)
}

func (s *Simulation) steerPlayer(in Input) {
	if in.Stop {
		s.player.Stop()
		return
	}
	d := in.Intent()
	if d == entities.DirNone {
		return
	}
	s.playerWalls().Resolve(&s.player.Body, d.Velocity(s.cfg.Player.Speed), axisOf(d))
}

// advance moves every body by its velocity. Ghost velocities are resolved
// from their heading first; ghosts only ever move along one axis.
func (s *Simulation) advance() {
	s.player.Advance()
	for _, g := range s.ghosts {
		g.Velocity = geom.Point{}
		if g.Heading != entities.DirNone {
			s.wallsFor(g.Radius).Resolve(&g.Body, g.Heading.Velocity(g.Speed), axisOf(g.Heading))
		}
		g.Advance()
	}
}
