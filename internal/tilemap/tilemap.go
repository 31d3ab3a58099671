package tilemap

import (
	"errors"
	"fmt"

	"pacman/internal/entities"
	"pacman/internal/geom"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
)

var (
	ErrEmptyMaze     = errors.New("maze has no rows")
	ErrRaggedMaze    = errors.New("maze rows differ in length")
	ErrUnknownSymbol = errors.New("unknown maze symbol")
)

// wallKinds names the wall segment drawn for each wall symbol.
var wallKinds = map[byte]string{
	'-': "pipeHorizontal",
	'|': "pipeVertical",
	'1': "pipeCorner1",
	'2': "pipeCorner2",
	'3': "pipeCorner3",
	'4': "pipeCorner4",
	'b': "block",
	'[': "capLeft",
	']': "capRight",
	'_': "capBottom",
	'^': "capTop",
	'+': "pipeCross",
	'5': "pipeConnectorTop",
	'6': "pipeConnectorRight",
	'7': "pipeConnectorBottom",
	'8': "pipeConnectorLeft",
}

type TileMap struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	// Symbols keeps the raw maze characters, row-major.
	Symbols [][]byte
}

// Cell addresses a tile by column and row.
type Cell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

func NewDefaultMap(tileSize int) *TileMap {
	m, err := Parse(DefaultMaze, tileSize)
	if err != nil {
		panic(fmt.Errorf("default maze: %w", err))
	}
	return m
}

// Parse reads a maze grid, one string per row.
func Parse(lines []string, tileSize int) (*TileMap, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	h := len(lines)
	w := len(lines[0])
	m := &TileMap{
		Width:    w,
		Height:   h,
		TileSize: tileSize,
		Tiles:    make([][]Tile, h),
		Symbols:  make([][]byte, h),
	}
	for y := 0; y < h; y++ {
		if len(lines[y]) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(lines[y]), w, ErrRaggedMaze)
		}
		m.Tiles[y] = make([]Tile, w)
		m.Symbols[y] = []byte(lines[y])
		for x := 0; x < w; x++ {
			c := lines[y][x]
			switch {
			case c == '.':
				m.Tiles[y][x] = TilePellet
			case c == 'p':
				m.Tiles[y][x] = TilePower
			case c == ' ':
				m.Tiles[y][x] = TileEmpty
			case wallKinds[c] != "":
				m.Tiles[y][x] = TileWall
			default:
				return nil, fmt.Errorf("%q at col %d row %d: %w", c, x, y, ErrUnknownSymbol)
			}
		}
	}
	return m, nil
}

func (m *TileMap) IsWall(x, y int) bool {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return true
	}
	return m.Tiles[y][x] == TileWall
}

// Center is the pixel position of a tile's centre.
func (m *TileMap) Center(c Cell) geom.Point {
	half := float64(m.TileSize) / 2
	return geom.Point{
		X: float64(c.Col*m.TileSize) + half,
		Y: float64(c.Row*m.TileSize) + half,
	}
}

// PixelWidth and PixelHeight are the maze dimensions in pixels.
func (m *TileMap) PixelWidth() int {
	return m.Width * m.TileSize
}

func (m *TileMap) PixelHeight() int {
	return m.Height * m.TileSize
}

// Layout is what the simulation sees of a maze: static walls and the
// collectibles at the start of play.
type Layout struct {
	Obstacles []entities.Obstacle
	Pellets   []entities.Pellet
	PowerUps  []entities.PowerUp
}

// Compile turns the grid into positioned walls, pellets and power-ups.
// Obstacles come out in row-major order, which fixes the order the movement
// resolver scans them in.
func (m *TileMap) Compile(pelletRadius, powerUpRadius float64) Layout {
	var l Layout
	size := float64(m.TileSize)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Cell{Col: x, Row: y}
			switch m.Tiles[y][x] {
			case TileWall:
				l.Obstacles = append(l.Obstacles, entities.Obstacle{
					Position: geom.Point{X: float64(x) * size, Y: float64(y) * size},
					Width:    size,
					Height:   size,
					Kind:     wallKinds[m.Symbols[y][x]],
				})
			case TilePellet:
				l.Pellets = append(l.Pellets, entities.Pellet{Position: m.Center(c), Radius: pelletRadius})
			case TilePower:
				l.PowerUps = append(l.PowerUps, entities.PowerUp{Position: m.Center(c), Radius: powerUpRadius})
			}
		}
	}
	return l
}
