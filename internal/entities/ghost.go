package entities

type Ghost struct {
	Body
	ID    int
	Color string
	Speed float64
	// Scared ghosts can be eaten instead of catching the player.
	Scared bool
	// Heading is the committed travel direction. It survives the velocity
	// being zeroed by a wall.
	Heading Direction
	// PrevBlocked is the blocked set remembered since the last turn.
	PrevBlocked DirSet
}

// Turn commits the ghost to d and forgets the remembered blocked set.
func (g *Ghost) Turn(d Direction) {
	g.Heading = d
	g.Velocity = d.Velocity(g.Speed)
	g.PrevBlocked = 0
}
