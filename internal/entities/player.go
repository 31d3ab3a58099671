package entities

import "math"

const (
	mouthOpenMax  = 0.75
	mouthOpenRate = 0.12
)

type Player struct {
	Body
	// Rotation is the facing angle in radians, 0 facing right.
	Rotation float64
	// MouthPhase is the half-opening of the mouth in radians.
	MouthPhase float64
	mouthRate  float64
}

func NewPlayer(b Body) *Player {
	return &Player{Body: b, mouthRate: mouthOpenRate}
}

// Face turns the player towards its direction of travel. A stopped player
// keeps its previous facing.
func (p *Player) Face() {
	switch DirectionOf(p.Velocity) {
	case DirRight:
		p.Rotation = 0
	case DirLeft:
		p.Rotation = math.Pi
	case DirDown:
		p.Rotation = math.Pi / 2
	case DirUp:
		p.Rotation = math.Pi * 1.5
	}
}

// Chomp advances the mouth animation by one frame, bouncing between closed
// and mouthOpenMax.
func (p *Player) Chomp() {
	if p.mouthRate == 0 {
		p.mouthRate = mouthOpenRate
	}
	if p.MouthPhase < 0 || p.MouthPhase > mouthOpenMax {
		p.mouthRate = -p.mouthRate
	}
	p.MouthPhase += p.mouthRate
}
