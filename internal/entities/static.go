package entities

import "pacman/internal/geom"

// Obstacle is a wall segment. It never changes after the maze is compiled.
type Obstacle struct {
	Position geom.Point // top-left corner
	Width    float64
	Height   float64
	// Kind names the wall segment the maze symbol stood for. Only renderers
	// care about it.
	Kind string
}

func (o Obstacle) Bounds() geom.Rect {
	return geom.RectAt(o.Position, o.Width, o.Height)
}

type Pellet struct {
	Position geom.Point
	Radius   float64
}

type PowerUp struct {
	Position geom.Point
	Radius   float64
}
