// Package playthrough records the inputs of a game so it can be replayed
// frame for frame. A playthrough carries everything the simulation depends
// on: configuration, seed and one input per frame.
package playthrough

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"pacman/internal/config"
	"pacman/internal/game"
)

// FormatVersion changes whenever the encoded layout of a playthrough does.
const FormatVersion = 1

var ErrVersion = errors.New("unsupported playthrough version")

type Playthrough struct {
	Version int64         `msgpack:"version"`
	Id      uuid.UUID     `msgpack:"id"`
	Seed    int64         `msgpack:"seed"`
	Config  config.Config `msgpack:"config"`
	History []game.Input  `msgpack:"history"`
	Outcome *game.Frame   `msgpack:"outcome,omitempty"`
}

func New(cfg config.Config, seed int64) *Playthrough {
	return &Playthrough{
		Version: FormatVersion,
		Id:      uuid.New(),
		Seed:    seed,
		Config:  cfg,
	}
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	clone.Config.Maze = slices.Clone(p.Config.Maze)
	clone.Config.Ghosts = slices.Clone(p.Config.Ghosts)
	return &clone
}

func (p *Playthrough) Serialize() ([]byte, error) {
	return msgpack.Marshal(p)
}

func Deserialize(data []byte) (*Playthrough, error) {
	p := &Playthrough{}
	if err := msgpack.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode playthrough: %w", err)
	}
	if p.Version != FormatVersion {
		return nil, fmt.Errorf("got version %d, want %d: %w", p.Version, FormatVersion, ErrVersion)
	}
	return p, nil
}

func (p *Playthrough) Save(path string) error {
	data, err := p.Serialize()
	if err != nil {
		return fmt.Errorf("encode playthrough: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func Load(path string) (*Playthrough, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
