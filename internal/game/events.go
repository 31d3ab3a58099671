package game

import (
	"fmt"

	"pacman/internal/geom"
)

type EventKind int

const (
	PelletConsumed EventKind = iota + 1
	PowerUpConsumed
	GhostEaten
	PlayerCaught
	MazeCleared
)

func (k EventKind) String() string {
	switch k {
	case PelletConsumed:
		return "pellet-consumed"
	case PowerUpConsumed:
		return "power-up-consumed"
	case GhostEaten:
		return "ghost-eaten"
	case PlayerCaught:
		return "player-caught"
	case MazeCleared:
		return "maze-cleared"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Terminal reports whether the event ends the game.
func (k EventKind) Terminal() bool {
	return k == PlayerCaught || k == MazeCleared
}

// Event is something that happened during a frame. Score is the points it
// awarded, if any.
type Event struct {
	Kind     EventKind
	Score    int
	Position geom.Point
	GhostID  int
}

// Frame is the outcome of one Step.
type Frame struct {
	Index  int
	Events []Event
	Score  int
	State  State
}
