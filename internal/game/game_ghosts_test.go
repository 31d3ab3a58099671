package game

import (
	"math/rand"
	"testing"

	"pacman/internal/config"
	"pacman/internal/entities"
	"pacman/internal/geom"
	tm "pacman/internal/tilemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGhostTurnsBackAtDeadEnd(t *testing.T) {
	cfg := testConfig([]string{
		"1-----2",
		"|     |",
		"|-----|",
		"|.    |",
		"4-----3",
	}, tm.Cell{Col: 5, Row: 3}, ghostAt(2, 1, "right"))
	s := newSim(t, cfg, 1)
	g := s.ghosts[0]
	up, down, right := entities.DirUp, entities.DirDown, entities.DirRight

	s.Step(Input{})
	assert.Equal(t, geom.Point{X: 102, Y: 60}, g.Position)
	assert.Equal(t, entities.SetOf(up, down), g.PrevBlocked)

	stepN(s, 59, Input{})
	assert.Equal(t, geom.Point{X: 220, Y: 60}, g.Position)
	assert.Equal(t, entities.DirRight, g.Heading)
	assert.Equal(t, entities.SetOf(up, down, right), g.PrevBlocked)

	// Stuck against the wall, the only way out is back.
	s.Step(Input{})
	assert.Equal(t, geom.Point{X: 220, Y: 60}, g.Position)
	assert.Equal(t, entities.DirLeft, g.Heading)
	assert.True(t, g.PrevBlocked.Empty())

	s.Step(Input{})
	assert.Equal(t, geom.Point{X: 218, Y: 60}, g.Position)
	assert.Equal(t, entities.SetOf(up, down), g.PrevBlocked)
}

func TestGhostChoosesAtJunction(t *testing.T) {
	cfg := testConfig([]string{
		"1-------2",
		"|       |",
		"|--- ---|",
		"|.      |",
		"4-------3",
	}, tm.Cell{Col: 7, Row: 3}, ghostAt(2, 1, "right"))

	seen := map[entities.Direction]bool{}
	for seed := int64(0); seed < 32; seed++ {
		s := newSim(t, cfg, seed)
		g := s.ghosts[0]

		stepN(s, 39, Input{})
		require.Equal(t, entities.DirRight, g.Heading, "no decision before the junction")

		s.Step(Input{})
		require.Equal(t, geom.Point{X: 180, Y: 60}, g.Position)
		require.Contains(t, []entities.Direction{entities.DirDown, entities.DirRight}, g.Heading,
			"a ghost never turns back at a junction")
		seen[g.Heading] = true
	}
	assert.Len(t, seen, 2, "both open directions get picked")
}

func TestGhostMemoryOnlyResets(t *testing.T) {
	for _, seed := range []int64{1, 5, 9} {
		s := newSim(t, config.Default(), seed)
		r := rand.New(rand.NewSource(seed))
		prev := map[int]entities.DirSet{}
		in := Input{}
		for i := 0; i < 2000 && s.State() == Running; i++ {
			if i%20 == 0 {
				in = Hold(entities.Directions[r.Intn(len(entities.Directions))])
			}
			s.Step(in)
			for _, g := range s.ghosts {
				before := prev[g.ID]
				after := g.PrevBlocked
				require.True(t, after.Len() >= before.Len() || after.Empty(),
					"seed %d frame %d ghost %d: %v shrank to %v", seed, s.frame, g.ID, before, after)
				prev[g.ID] = after
			}
		}
	}
}

func TestGhostsNeverStallTwice(t *testing.T) {
	s := newSim(t, config.Default(), 3)
	// Park the player outside the maze so nothing ends the game.
	s.player.Position = geom.Point{X: -1000, Y: -1000}

	last := map[int]geom.Point{}
	idle := map[int]int{}
	for _, g := range s.ghosts {
		last[g.ID] = g.Position
	}
	for i := 0; i < 1000; i++ {
		s.Step(Input{})
		require.Equal(t, Running, s.State())
		for _, g := range s.ghosts {
			if g.Position == last[g.ID] {
				idle[g.ID]++
			} else {
				idle[g.ID] = 0
			}
			require.Less(t, idle[g.ID], 2, "frame %d: ghost %d stuck at %v", s.frame, g.ID, g.Position)
			last[g.ID] = g.Position
		}
	}
}

func TestFallbackPathways(t *testing.T) {
	up, down, left, right := entities.DirUp, entities.DirDown, entities.DirLeft, entities.DirRight
	tests := []struct {
		name    string
		heading entities.Direction
		blocked entities.DirSet
		want    entities.DirSet
	}{
		{"dead end reverses", right, entities.SetOf(up, down, right), entities.SetOf(left)},
		{"reverse blocked", right, entities.SetOf(left, right, up), entities.SetOf(down)},
		{"boxed in", up, entities.SetOf(up, down, left, right), 0},
		{"no heading", entities.DirNone, entities.SetOf(up), entities.SetOf(down, left, right)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallbackPathways(tt.heading, tt.blocked))
		})
	}
}
