package playthrough

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"pacman/internal/game"
)

// Replay feeds back a recorded history. Past its end it returns idle input.
type Replay struct {
	history []game.Input
	next    int
}

func NewReplay(p *Playthrough) *Replay {
	return &Replay{history: p.History}
}

func (r *Replay) Next() game.Input {
	if r.next >= len(r.history) {
		return game.Input{}
	}
	in := r.history[r.next]
	r.next++
	return in
}

func (r *Replay) Done() bool {
	return r.next >= len(r.history)
}

// Result is the outcome of replaying a playthrough.
type Result struct {
	Final        game.Frame
	RegressionID string
}

// Run replays the whole history on a fresh simulation. The regression id
// hashes the observable state after every frame, so two builds of the game
// that agree on the id played the recording the same way.
func Run(p *Playthrough, log *zap.Logger) (Result, error) {
	sim, err := game.New(p.Config, p.Seed, game.WithLogger(log))
	if err != nil {
		return Result{}, err
	}
	h := xxhash.New()
	_, _ = h.Write(sim.StateBytes())

	var final game.Frame
	src := NewReplay(p)
	for !src.Done() {
		final = sim.Step(src.Next())
		_, _ = h.Write(sim.StateBytes())
	}
	return Result{
		Final:        final,
		RegressionID: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// RegressionID is Run without the final frame.
func RegressionID(p *Playthrough) (string, error) {
	r, err := Run(p, nil)
	if err != nil {
		return "", err
	}
	return r.RegressionID, nil
}
