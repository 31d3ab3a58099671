// Package config holds the tunable parameters of a game: maze, tile size,
// speeds, radii, scores and timers.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"pacman/internal/entities"
	"pacman/internal/geom"
	tm "pacman/internal/tilemap"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	TileSize  int `yaml:"tileSize"`
	FrameRate int `yaml:"frameRate"`
	// ScaredMillis is how long a power-up keeps ghosts scared.
	ScaredMillis int `yaml:"scaredMillis"`
	// Padding overrides the collision margin. When unset it is derived from
	// the tile size and each entity's radius.
	Padding       *float64      `yaml:"padding,omitempty"`
	PelletRadius  float64       `yaml:"pelletRadius"`
	PowerUpRadius float64       `yaml:"powerUpRadius"`
	PelletScore   int           `yaml:"pelletScore"`
	GhostScore    int           `yaml:"ghostScore"`
	Player        PlayerConfig  `yaml:"player"`
	Ghosts        []GhostConfig `yaml:"ghosts"`
	Maze          []string      `yaml:"maze"`
}

type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Spawn  tm.Cell `yaml:"spawn"`
}

type GhostConfig struct {
	Color   string  `yaml:"color"`
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"`
	Spawn   tm.Cell `yaml:"spawn"`
	Heading string  `yaml:"heading"`
}

// Default is the classic tuning: 40px tiles, speeds 5 and 2, 5s scare.
func Default() Config {
	return Config{
		TileSize:      40,
		FrameRate:     60,
		ScaredMillis:  5000,
		PelletRadius:  3,
		PowerUpRadius: 8,
		PelletScore:   10,
		GhostScore:    50,
		Player: PlayerConfig{
			Radius: 15,
			Speed:  5,
			Spawn:  tm.Cell{Col: 1, Row: 1},
		},
		Ghosts: []GhostConfig{
			{Color: "red", Radius: 15, Speed: 2, Spawn: tm.Cell{Col: 6, Row: 1}, Heading: "right"},
			{Color: "pink", Radius: 15, Speed: 2, Spawn: tm.Cell{Col: 6, Row: 3}, Heading: "right"},
		},
		Maze: append([]string(nil), tm.DefaultMaze...),
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func (c Config) ScaredDuration() time.Duration {
	return time.Duration(c.ScaredMillis) * time.Millisecond
}

// PaddingFor returns the collision margin for an entity of the given radius.
func (c Config) PaddingFor(radius float64) float64 {
	if c.Padding != nil {
		return *c.Padding
	}
	return geom.Padding(float64(c.TileSize), radius)
}

// ParseDirection maps a direction name from the config file.
func ParseDirection(name string) (entities.Direction, error) {
	for _, d := range entities.Directions {
		if d.String() == name {
			return d, nil
		}
	}
	return entities.DirNone, fmt.Errorf("direction %q: %w", name, ErrInvalid)
}

// TileMap parses the configured maze.
func (c Config) TileMap() (*tm.TileMap, error) {
	return tm.Parse(c.Maze, c.TileSize)
}

// Validate rejects configurations the collision model cannot handle: bodies
// wider than a corridor, speeds that never land on a tile centre, spawns on
// walls and unreachable collectibles.
func (c Config) Validate() error {
	if c.TileSize <= 0 || c.FrameRate <= 0 || c.ScaredMillis <= 0 {
		return fmt.Errorf("tileSize, frameRate and scaredMillis must be positive: %w", ErrInvalid)
	}
	if c.PelletRadius <= 0 || c.PowerUpRadius <= 0 {
		return fmt.Errorf("collectible radii must be positive: %w", ErrInvalid)
	}
	if err := c.checkMover("player", c.Player.Radius, c.Player.Speed); err != nil {
		return err
	}
	spawns := make([]tm.Cell, 0, len(c.Ghosts))
	for i, g := range c.Ghosts {
		if err := c.checkMover(fmt.Sprintf("ghost %d", i), g.Radius, g.Speed); err != nil {
			return err
		}
		if _, err := ParseDirection(g.Heading); err != nil {
			return fmt.Errorf("ghost %d: %w", i, err)
		}
		spawns = append(spawns, g.Spawn)
	}
	m, err := c.TileMap()
	if err != nil {
		return fmt.Errorf("maze: %w", err)
	}
	if err := m.Validate(c.Player.Spawn, spawns...); err != nil {
		return fmt.Errorf("maze: %w", err)
	}
	return nil
}

func (c Config) checkMover(name string, radius, speed float64) error {
	tile := float64(c.TileSize)
	if radius <= 0 || radius > tile/2 {
		return fmt.Errorf("%s radius %v must be in (0, %v]: %w", name, radius, tile/2, ErrInvalid)
	}
	if speed <= 0 {
		return fmt.Errorf("%s speed must be positive: %w", name, ErrInvalid)
	}
	if math.Mod(tile, speed) != 0 {
		return fmt.Errorf("%s speed %v does not divide the tile size: %w", name, speed, ErrInvalid)
	}
	if c.PaddingFor(radius) < 0 {
		return fmt.Errorf("%s padding is negative: %w", name, ErrInvalid)
	}
	return nil
}
