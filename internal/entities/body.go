package entities

import "pacman/internal/geom"

// Body is the part shared by everything that moves through the maze.
type Body struct {
	Position geom.Point
	Velocity geom.Point
	Radius   float64
}

// Advance moves the body by its current velocity.
func (b *Body) Advance() {
	b.Position = b.Position.Add(b.Velocity)
}

// Stop zeroes both velocity components.
func (b *Body) Stop() {
	b.Velocity = geom.Point{}
}

// Touches reports whether two circles are closer than the sum of their radii.
func Touches(a geom.Point, ra float64, b geom.Point, rb float64) bool {
	return a.Dist(b) < ra+rb
}
