package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pacman/internal/entities"
	tm "pacman/internal/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5*time.Second, cfg.ScaredDuration())
	assert.Equal(t, time.Second/60, cfg.FrameDuration())
	assert.Equal(t, 4.0, cfg.PaddingFor(cfg.Player.Radius))
}

func TestPaddingOverride(t *testing.T) {
	cfg := Default()
	zero := 0.0
	cfg.Padding = &zero
	assert.Equal(t, 0.0, cfg.PaddingFor(15))
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte(`
scaredMillis: 3000
player:
  radius: 12
  speed: 4
  spawn: {col: 1, row: 1}
ghosts:
  - color: cyan
    radius: 12
    speed: 4
    spawn: {col: 9, row: 11}
    heading: left
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3000, cfg.ScaredMillis)
	assert.Equal(t, 40, cfg.TileSize, "tile size keeps its default")
	assert.Equal(t, 12.0, cfg.Player.Radius)
	require.Len(t, cfg.Ghosts, 1)
	assert.Equal(t, "cyan", cfg.Ghosts[0].Color)
	assert.Equal(t, tm.Cell{Col: 9, Row: 11}, cfg.Ghosts[0].Spawn)
	assert.Equal(t, tm.DefaultMaze, cfg.Maze)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "radius wider than corridor", mutate: func(c *Config) { c.Player.Radius = 25 }},
		{name: "negative padding", mutate: func(c *Config) { c.Ghosts[0].Radius = 20 }},
		{name: "zero speed", mutate: func(c *Config) { c.Ghosts[1].Speed = 0 }},
		{name: "speed off the grid", mutate: func(c *Config) { c.Player.Speed = 3 }},
		{name: "bad heading", mutate: func(c *Config) { c.Ghosts[0].Heading = "north" }},
		{name: "spawn on wall", mutate: func(c *Config) { c.Player.Spawn = tm.Cell{} }},
		{name: "ragged maze", mutate: func(c *Config) { c.Maze = []string{"---", "|."} }},
		{name: "no frame rate", mutate: func(c *Config) { c.FrameRate = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, entities.DirDown, d)

	_, err = ParseDirection("")
	assert.ErrorIs(t, err, ErrInvalid)
}
