package game

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrRunnerStopped = errors.New("runner already stopped")

// Runner drives a simulation from a ticker, one Step per tick, until the game
// ends or the context is cancelled.
type Runner struct {
	sim    *Simulation
	input  InputSource
	sink   func(Frame)
	period time.Duration

	stopOnce sync.Once
	stopped  bool
	ticker   *time.Ticker
}

// NewRunner ticks at the simulation's frame rate. sink may be nil.
func NewRunner(sim *Simulation, input InputSource, sink func(Frame)) *Runner {
	return &Runner{
		sim:    sim,
		input:  input,
		sink:   sink,
		period: sim.cfg.FrameDuration(),
	}
}

// SetPeriod overrides the tick period. It has no effect once Run started.
func (r *Runner) SetPeriod(d time.Duration) {
	r.period = d
}

// Run blocks until the game reaches a terminal state, returning the final
// frame, or until ctx is done. A Runner runs once.
func (r *Runner) Run(ctx context.Context) (Frame, error) {
	if r.stopped {
		return r.sim.frameResult(), ErrRunnerStopped
	}
	r.ticker = time.NewTicker(r.period)
	defer r.stop()

	for {
		select {
		case <-ctx.Done():
			return r.sim.frameResult(), ctx.Err()
		case <-r.ticker.C:
			// The context may have been cancelled while a tick was pending.
			if ctx.Err() != nil {
				return r.sim.frameResult(), ctx.Err()
			}
			f := r.sim.Step(r.input.Next())
			if r.sink != nil {
				r.sink(f)
			}
			if f.State != Running {
				return f, nil
			}
		}
	}
}

func (r *Runner) stop() {
	r.stopOnce.Do(func() {
		r.stopped = true
		r.ticker.Stop()
	})
}
