package game

import (
	"slices"

	"go.uber.org/zap"

	"pacman/internal/entities"
)

// detect tests the player against ghosts, power-ups and pellets, in that
// order. Each collection is walked back to front so removals do not skip
// anything. A caught player ends detection at once.
//
// Consumed items leave their collection immediately, so running detect twice
// in a frame never scores the same item twice.
func (s *Simulation) detect() {
	p := s.player

	for i := len(s.ghosts) - 1; i >= 0; i-- {
		g := s.ghosts[i]
		if !entities.Touches(g.Position, g.Radius, p.Position, p.Radius) {
			continue
		}
		if !g.Scared {
			s.finish(Lost, PlayerCaught)
			return
		}
		s.ghosts = slices.Delete(s.ghosts, i, i+1)
		s.timers.Cancel(g.ID)
		s.award(Event{Kind: GhostEaten, Score: s.cfg.GhostScore, Position: g.Position, GhostID: g.ID})
		s.log.Debug("ghost eaten", zap.Int("ghost", g.ID), zap.Int("score", s.score))
	}

	for i := len(s.powerUps) - 1; i >= 0; i-- {
		pu := s.powerUps[i]
		if !entities.Touches(pu.Position, pu.Radius, p.Position, p.Radius) {
			continue
		}
		s.powerUps = slices.Delete(s.powerUps, i, i+1)
		s.emit(Event{Kind: PowerUpConsumed, Position: pu.Position})
		s.scareGhosts()
	}

	for i := len(s.pellets) - 1; i >= 0; i-- {
		pl := s.pellets[i]
		if !entities.Touches(pl.Position, pl.Radius, p.Position, p.Radius) {
			continue
		}
		s.pellets = slices.Delete(s.pellets, i, i+1)
		s.award(Event{Kind: PelletConsumed, Score: s.cfg.PelletScore, Position: pl.Position})
	}

	s.checkWin()
}

func (s *Simulation) award(e Event) {
	s.score += e.Score
	s.emit(e)
}
