package game

import "pacman/internal/entities"

// Input is the movement signal for one frame, already reduced from raw
// keyboard events.
type Input struct {
	Up, Down, Left, Right bool
	// Last is the most recently pressed direction.
	Last entities.Direction
	// Stop halts the player on the spot.
	Stop bool
}

func (in Input) Pressed(d entities.Direction) bool {
	switch d {
	case entities.DirUp:
		return in.Up
	case entities.DirDown:
		return in.Down
	case entities.DirLeft:
		return in.Left
	case entities.DirRight:
		return in.Right
	default:
		return false
	}
}

// Intent is the direction the player asks for: the last pressed direction,
// as long as it is still held.
func (in Input) Intent() entities.Direction {
	if in.Pressed(in.Last) {
		return in.Last
	}
	return entities.DirNone
}

// Hold returns an input holding down only d.
func Hold(d entities.Direction) Input {
	in := Input{Last: d}
	switch d {
	case entities.DirUp:
		in.Up = true
	case entities.DirDown:
		in.Down = true
	case entities.DirLeft:
		in.Left = true
	case entities.DirRight:
		in.Right = true
	}
	return in
}

// InputSource supplies one Input per frame.
type InputSource interface {
	Next() Input
}

type InputFunc func() Input

func (f InputFunc) Next() Input {
	return f()
}
