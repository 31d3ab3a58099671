package playthrough

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"pacman/internal/config"
	"pacman/internal/entities"
	"pacman/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script turns in a fixed pattern so the player wanders the maze.
func script() game.InputSource {
	dirs := []entities.Direction{entities.DirRight, entities.DirDown, entities.DirLeft, entities.DirDown, entities.DirRight, entities.DirUp}
	i := 0
	return game.InputFunc(func() game.Input {
		in := game.Hold(dirs[(i/30)%len(dirs)])
		i++
		return in
	})
}

func record(t *testing.T, seed int64, frames int) *Playthrough {
	t.Helper()
	p := New(config.Default(), seed)
	sim, err := game.New(p.Config, p.Seed)
	require.NoError(t, err)
	rec := NewRecorder(p, script())
	var f game.Frame
	for i := 0; i < frames; i++ {
		f = sim.Step(rec.Next())
	}
	rec.Finish(f)
	return rec.Playthrough()
}

func TestSaveLoad(t *testing.T) {
	p := record(t, 11, 120)
	require.Len(t, p.History, 120)
	assert.NotEqual(t, uuid.Nil, p.Id)

	path := filepath.Join(t.TempDir(), "run.pac")
	require.NoError(t, p.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, p.Id, loaded.Id)
	assert.Equal(t, p.Seed, loaded.Seed)
	assert.Equal(t, p.History, loaded.History)
	assert.Equal(t, p.Config, loaded.Config)
	require.NotNil(t, loaded.Outcome)
	assert.Equal(t, p.Outcome.Score, loaded.Outcome.Score)
}

func TestDeserializeRejectsOtherVersions(t *testing.T) {
	p := New(config.Default(), 1)
	p.Version = FormatVersion + 1
	data, err := msgpack.Marshal(p)
	require.NoError(t, err)

	_, err = Deserialize(data)
	assert.ErrorIs(t, err, ErrVersion)

	_, err = Deserialize([]byte("not a playthrough"))
	assert.Error(t, err)
}

func TestReplayReproducesGame(t *testing.T) {
	p := record(t, 5, 400)

	res, err := Run(p, nil)
	require.NoError(t, err)
	assert.Equal(t, p.Outcome.Score, res.Final.Score)
	assert.Equal(t, p.Outcome.State, res.Final.State)
	assert.Equal(t, p.Outcome.Index, res.Final.Index)
}

func TestRegressionID(t *testing.T) {
	p := record(t, 5, 300)

	id, err := RegressionID(p)
	require.NoError(t, err)
	assert.Len(t, id, 16)

	again, err := RegressionID(p.Clone())
	require.NoError(t, err)
	assert.Equal(t, id, again, "replays are deterministic")

	other := p.Clone()
	other.History[0] = game.Hold(entities.DirDown)
	changed, err := RegressionID(other)
	require.NoError(t, err)
	assert.NotEqual(t, id, changed)
}

func TestCloneIsDeep(t *testing.T) {
	p := record(t, 1, 10)
	c := p.Clone()
	c.History[0].Stop = true
	c.Config.Maze[0] = "x"
	assert.False(t, p.History[0].Stop)
	assert.NotEqual(t, "x", p.Config.Maze[0])
}

func TestReplayIdlesPastTheEnd(t *testing.T) {
	p := &Playthrough{History: []game.Input{game.Hold(entities.DirUp)}}
	r := NewReplay(p)
	assert.False(t, r.Done())
	assert.Equal(t, game.Hold(entities.DirUp), r.Next())
	assert.True(t, r.Done())
	assert.Equal(t, game.Input{}, r.Next())
}

func TestRunRejectsBadConfig(t *testing.T) {
	p := New(config.Default(), 1)
	p.Config.TileSize = 0
	_, err := Run(p, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
