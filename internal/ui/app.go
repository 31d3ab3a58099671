// Package ui runs a simulation in an ebiten window: the keyboard drives the
// player and every tick draws a snapshot of the game.
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"pacman/internal/game"
	"pacman/internal/logging"
	"pacman/internal/playthrough"
)

// App implements ebiten.Game. Each Update steps the simulation once, so the
// window's TPS must match the configured frame rate.
type App struct {
	sim      *game.Simulation
	keys     KeySource
	input    game.InputSource
	record   *playthrough.Playthrough
	recorder *playthrough.Recorder
	log      *zap.Logger

	paused     bool
	fullscreen bool
	finished   bool
}

type Option func(*App)

func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = logging.OrNop(l) }
}

// WithKeys replaces the ebiten keyboard, mainly for tests.
func WithKeys(k KeySource) Option {
	return func(a *App) { a.keys = k }
}

// WithRecorder records every input the simulation is stepped with.
func WithRecorder(p *playthrough.Playthrough) Option {
	return func(a *App) { a.record = p }
}

func NewApp(sim *game.Simulation, opts ...Option) *App {
	a := &App{
		sim:  sim,
		keys: ebitenKeys{},
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.input = NewKeyboard(a.keys)
	if a.record != nil {
		a.recorder = playthrough.NewRecorder(a.record, a.input)
		a.input = a.recorder
	}
	return a
}

func (a *App) Width() int {
	return a.sim.TileMap().PixelWidth()
}

func (a *App) Height() int {
	return a.sim.TileMap().PixelHeight()
}

func (a *App) Update() error {
	if a.keys.JustPressed(keyQuit) {
		a.log.Info("quit requested", zap.Int("score", a.sim.Score()))
		return ebiten.Termination
	}
	if a.keys.JustPressed(keyFullscreen) {
		a.fullscreen = !a.fullscreen
		ebiten.SetFullscreen(a.fullscreen)
	}
	if a.keys.JustPressed(keyPause) {
		a.paused = !a.paused
	}
	if a.paused || a.finished {
		return nil
	}

	f := a.sim.Step(a.input.Next())
	for _, e := range f.Events {
		a.log.Debug("event",
			zap.Int("frame", f.Index),
			zap.Stringer("kind", e.Kind),
			zap.Int("points", e.Score))
	}
	if f.State != game.Running {
		a.finished = true
		if a.recorder != nil {
			a.recorder.Finish(f)
		}
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	DrawSnapshot(screen, a.sim.Snapshot(), a.paused)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.Width(), a.Height()
}

// Finished reports whether the game reached a terminal state.
func (a *App) Finished() bool {
	return a.finished
}
