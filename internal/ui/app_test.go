package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"pacman/internal/config"
	"pacman/internal/entities"
	"pacman/internal/game"
	"pacman/internal/playthrough"
	tm "pacman/internal/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeys holds keys down until released. A key counts as just pressed on
// the first tick it is held.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) press(keys ...ebiten.Key) {
	for _, k := range keys {
		f.held[k] = true
		f.just[k] = true
	}
}

func (f *fakeKeys) release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(f.held, k)
	}
}

// tick clears the just-pressed state, as a new ebiten tick would.
func (f *fakeKeys) tick() {
	f.just = map[ebiten.Key]bool{}
}

func (f *fakeKeys) Held(k ebiten.Key) bool        { return f.held[k] }
func (f *fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func TestKeyboardLastPressedWins(t *testing.T) {
	keys := newFakeKeys()
	kb := NewKeyboard(keys)

	keys.press(ebiten.KeyArrowRight)
	in := kb.Next()
	assert.True(t, in.Right)
	assert.Equal(t, entities.DirRight, in.Intent())

	keys.tick()
	keys.press(ebiten.KeyW)
	in = kb.Next()
	assert.True(t, in.Up)
	assert.True(t, in.Right)
	assert.Equal(t, entities.DirUp, in.Intent())

	// Releasing the last key does not fall back to the other held key.
	keys.tick()
	keys.release(ebiten.KeyW)
	in = kb.Next()
	assert.Equal(t, entities.DirUp, in.Last)
	assert.Equal(t, entities.DirNone, in.Intent())
}

func TestKeyboardStop(t *testing.T) {
	keys := newFakeKeys()
	kb := NewKeyboard(keys)
	keys.press(ebiten.KeySpace)
	assert.True(t, kb.Next().Stop)
	keys.tick()
	assert.False(t, kb.Next().Stop)
}

func corridorSim(t *testing.T) *game.Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.Maze = []string{
		"1-----2",
		"|   ..|",
		"4-----3",
	}
	cfg.Player.Spawn = tm.Cell{Col: 1, Row: 1}
	cfg.Ghosts = nil
	sim, err := game.New(cfg, 1)
	require.NoError(t, err)
	return sim
}

func TestAppPlaysAndRecords(t *testing.T) {
	sim := corridorSim(t)
	keys := newFakeKeys()
	p := playthrough.New(sim.Config(), 1)
	app := NewApp(sim, WithKeys(keys), WithRecorder(p))

	keys.press(ebiten.KeyD)
	for i := 0; i < 200 && !app.Finished(); i++ {
		require.NoError(t, app.Update())
		keys.tick()
	}
	require.True(t, app.Finished())
	assert.Equal(t, game.Won, sim.State())
	assert.Equal(t, 20, sim.Score())

	frames := len(p.History)
	require.NoError(t, app.Update())
	assert.Len(t, p.History, frames, "nothing is recorded after the game ends")
	require.NotNil(t, p.Outcome)
	assert.Equal(t, game.Won, p.Outcome.State)

	res, err := playthrough.Run(p, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Final.Score)
}

func TestAppPause(t *testing.T) {
	sim := corridorSim(t)
	keys := newFakeKeys()
	app := NewApp(sim, WithKeys(keys))

	keys.press(ebiten.KeyP)
	require.NoError(t, app.Update())
	keys.tick()
	keys.press(ebiten.KeyD)
	for i := 0; i < 10; i++ {
		require.NoError(t, app.Update())
	}
	assert.Zero(t, sim.Snapshot().Frame, "a paused game does not step")

	keys.press(ebiten.KeyP)
	require.NoError(t, app.Update())
	assert.Equal(t, 1, sim.Snapshot().Frame)
}

func TestAppQuit(t *testing.T) {
	keys := newFakeKeys()
	app := NewApp(corridorSim(t), WithKeys(keys))
	keys.press(ebiten.KeyQ)
	assert.ErrorIs(t, app.Update(), ebiten.Termination)
}

func TestLayoutMatchesMaze(t *testing.T) {
	app := NewApp(corridorSim(t), WithKeys(newFakeKeys()))
	w, h := app.Layout(0, 0)
	assert.Equal(t, 280, w)
	assert.Equal(t, 120, h)
}

func TestDrawDoesNotPanic(t *testing.T) {
	sim, err := game.New(config.Default(), 1)
	require.NoError(t, err)
	app := NewApp(sim, WithKeys(newFakeKeys()))
	screen := ebiten.NewImage(app.Width(), app.Height())

	app.Draw(screen)
	for i := 0; i < 10; i++ {
		sim.Step(game.Hold(entities.DirRight))
	}
	snap := sim.Snapshot()
	snap.State = game.Lost
	DrawSnapshot(screen, snap, false)
	DrawSnapshot(screen, snap, true)
}
