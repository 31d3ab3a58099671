package game

import (
	"encoding/binary"
	"math"

	"pacman/internal/entities"
)

// Snapshot is everything a renderer needs for one frame, as plain values.
// Obstacles are shared with the simulation and must not be modified.
type Snapshot struct {
	Frame     int
	Score     int
	State     State
	TileSize  int
	Obstacles []entities.Obstacle
	Pellets   []entities.Pellet
	PowerUps  []entities.PowerUp
	Player    entities.Player
	Ghosts    []entities.Ghost
}

func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     s.frame,
		Score:     s.score,
		State:     s.state,
		TileSize:  s.cfg.TileSize,
		Obstacles: s.obstacles,
		Pellets:   append([]entities.Pellet(nil), s.pellets...),
		PowerUps:  append([]entities.PowerUp(nil), s.powerUps...),
		Player:    *s.player,
		Ghosts:    make([]entities.Ghost, len(s.ghosts)),
	}
	for i, g := range s.ghosts {
		snap.Ghosts[i] = *g
	}
	return snap
}

// StateBytes encodes the observable state of the simulation: score, state,
// player, ghosts and remaining collectibles. Two simulations with equal
// StateBytes look the same to a player.
func (s *Simulation) StateBytes() []byte {
	buf := make([]byte, 0, 64+16*len(s.ghosts)+16*len(s.pellets))
	putInt := func(v int) { buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v))) }
	putFloat := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }

	putInt(s.frame)
	putInt(s.score)
	putInt(int(s.state))
	putFloat(s.player.Position.X)
	putFloat(s.player.Position.Y)
	putFloat(s.player.Velocity.X)
	putFloat(s.player.Velocity.Y)
	putInt(len(s.ghosts))
	for _, g := range s.ghosts {
		putInt(g.ID)
		putFloat(g.Position.X)
		putFloat(g.Position.Y)
		putInt(int(g.Heading))
		if g.Scared {
			putInt(1)
		} else {
			putInt(0)
		}
	}
	putInt(len(s.pellets))
	for _, p := range s.pellets {
		putFloat(p.Position.X)
		putFloat(p.Position.Y)
	}
	putInt(len(s.powerUps))
	return buf
}
