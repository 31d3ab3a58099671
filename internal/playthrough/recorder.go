package playthrough

import "pacman/internal/game"

// Recorder appends every input it hands out to the playthrough's history.
type Recorder struct {
	src game.InputSource
	p   *Playthrough
}

func NewRecorder(p *Playthrough, src game.InputSource) *Recorder {
	return &Recorder{src: src, p: p}
}

func (r *Recorder) Next() game.Input {
	in := r.src.Next()
	r.Record(in)
	return in
}

// Record appends an input produced elsewhere, such as by a UI that steps the
// simulation itself.
func (r *Recorder) Record(in game.Input) {
	r.p.History = append(r.p.History, in)
}

// Finish stores the final frame of the game.
func (r *Recorder) Finish(f game.Frame) {
	f.Events = nil
	r.p.Outcome = &f
}

func (r *Recorder) Playthrough() *Playthrough {
	return r.p
}
