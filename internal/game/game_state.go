package game

import (
	"go.uber.org/zap"

	"pacman/internal/entities"
)

// scareGhosts makes every live ghost edible and (re)arms its unscare task.
// A later power-up replaces the pending task, so the latest pickup decides
// when a ghost recovers.
func (s *Simulation) scareGhosts() {
	at := s.clock.Now() + s.cfg.ScaredDuration()
	for _, g := range s.ghosts {
		g.Scared = true
		id := g.ID
		s.timers.Schedule(id, at, func() { s.unscare(id) })
	}
	s.log.Debug("ghosts scared", zap.Int("ghosts", len(s.ghosts)), zap.Duration("until", at))
}

// unscare clears the flag of one ghost. The ghost may have been eaten in
// the meantime, in which case there is nothing to do.
func (s *Simulation) unscare(id int) {
	if g := s.ghostByID(id); g != nil {
		g.Scared = false
	}
}

func (s *Simulation) ghostByID(id int) *entities.Ghost {
	for _, g := range s.ghosts {
		if g.ID == id {
			return g
		}
	}
	return nil
}
