package entities

import (
	"strings"

	"pacman/internal/geom"
)

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four travel directions in probing order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

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
		return "none"
	}
}

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Velocity is the unit vector of d scaled by speed.
func (d Direction) Velocity(speed float64) geom.Point {
	dx, dy := DirDelta(d)
	return geom.Point{X: float64(dx) * speed, Y: float64(dy) * speed}
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// DirectionOf derives a travel direction from the sign of a velocity. The x
// component wins when both are non-zero.
func DirectionOf(v geom.Point) Direction {
	switch {
	case v.X > 0:
		return DirRight
	case v.X < 0:
		return DirLeft
	case v.Y < 0:
		return DirUp
	case v.Y > 0:
		return DirDown
	default:
		return DirNone
	}
}

// DirSet is a set of directions. Iteration always follows Directions order,
// so two sets holding the same members behave identically.
type DirSet uint8

func SetOf(dirs ...Direction) DirSet {
	var s DirSet
	for _, d := range dirs {
		s = s.Add(d)
	}
	return s
}

func (s DirSet) Add(d Direction) DirSet {
	if d == DirNone {
		return s
	}
	return s | 1<<uint(d)
}

func (s DirSet) Has(d Direction) bool {
	return d != DirNone && s&(1<<uint(d)) != 0
}

// Minus returns the members of s that are not in other.
func (s DirSet) Minus(other DirSet) DirSet {
	return s &^ other
}

func (s DirSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

func (s DirSet) Empty() bool {
	return s == 0
}

func (s DirSet) Slice() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirSet) String() string {
	names := make([]string, 0, 4)
	for _, d := range s.Slice() {
		names = append(names, d.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
