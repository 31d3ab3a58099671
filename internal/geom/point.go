package geom

import "math"

// Point is a real-valued 2D coordinate. It is used both for positions and
// for velocities.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

func (p Point) SquaredDist(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

func (p Point) Dist(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}
