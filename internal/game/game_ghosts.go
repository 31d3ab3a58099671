package game

import (
	"go.uber.org/zap"

	"pacman/internal/entities"
)

var allDirections = entities.SetOf(entities.Directions[:]...)

// blockedDirections probes all four directions at the ghost's speed.
func (s *Simulation) blockedDirections(g *entities.Ghost) entities.DirSet {
	walls := s.wallsFor(g.Radius)
	var blocked entities.DirSet
	for _, d := range entities.Directions {
		if walls.Blocked(g.Position, g.Radius, d.Velocity(g.Speed)) {
			blocked = blocked.Add(d)
		}
	}
	return blocked
}

// steerGhost runs the ghost's turn logic for this frame. The maze topology is
// never stored: a ghost notices an intersection when the set of blocked
// directions around it changes.
//
// While more directions close around the ghost it only remembers the larger
// set. When the set changes otherwise, or the ghost can no longer advance,
// its own heading joins the remembered set and the ghost picks at random
// among the remembered directions that are open now. The direction it came
// from has been open all along, so a ghost only turns back when stuck.
func (s *Simulation) steerGhost(g *entities.Ghost) {
	current := s.blockedDirections(g)
	stalled := g.Velocity.IsZero()

	if current.Len() > g.PrevBlocked.Len() && !stalled {
		g.PrevBlocked = current
		return
	}
	if current == g.PrevBlocked && !stalled {
		return
	}

	g.PrevBlocked = g.PrevBlocked.Add(g.Heading)
	pathways := g.PrevBlocked.Minus(current)
	if pathways.Empty() {
		pathways = fallbackPathways(g.Heading, current)
	}
	if pathways.Empty() {
		g.Stop()
		g.PrevBlocked = 0
		return
	}

	options := pathways.Slice()
	d := options[s.rng.Intn(len(options))]
	if d != g.Heading {
		s.log.Debug("ghost turned",
			zap.Int("ghost", g.ID),
			zap.Stringer("from", g.Heading),
			zap.Stringer("to", d),
			zap.Stringer("pathways", pathways))
	}
	g.Turn(d)
}

// fallbackPathways is used when no remembered direction opened up, as in a
// dead end. Reversing is allowed then; failing that, any open direction.
func fallbackPathways(heading entities.Direction, blocked entities.DirSet) entities.DirSet {
	if r := heading.Reverse(); r != entities.DirNone && !blocked.Has(r) {
		return entities.SetOf(r)
	}
	return allDirections.Minus(blocked)
}
