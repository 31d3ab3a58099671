package tilemap

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrBlockedSpawn = errors.New("spawn is outside the maze or on a wall")
	ErrUnreachable  = errors.New("collectible unreachable from the player spawn")
)

// Reachable collects every open tile connected to start through orthogonal
// moves.
func (m *TileMap) Reachable(start Cell) mapset.Set[Cell] {
	visited := mapset.New[Cell]()
	if m.IsWall(start.Col, start.Row) {
		return visited
	}
	queue := []Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			n := Cell{Col: current.Col + d[0], Row: current.Row + d[1]}
			if !m.IsWall(n.Col, n.Row) && !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Validate checks that every spawn is on an open tile and that the player
// can reach every pellet and power-up. Ghost spawns only need to be open.
func (m *TileMap) Validate(player Cell, ghosts ...Cell) error {
	for _, c := range append([]Cell{player}, ghosts...) {
		if m.IsWall(c.Col, c.Row) {
			return fmt.Errorf("col %d row %d: %w", c.Col, c.Row, ErrBlockedSpawn)
		}
	}
	reach := m.Reachable(player)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := m.Tiles[y][x]
			if (t == TilePellet || t == TilePower) && !reach.Has(Cell{Col: x, Row: y}) {
				return fmt.Errorf("col %d row %d: %w", x, y, ErrUnreachable)
			}
		}
	}
	return nil
}
