package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pacman/internal/entities"
	"pacman/internal/game"
)

// KeySource reports key state for the current tick.
type KeySource interface {
	Held(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Held(k ebiten.Key) bool        { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var bindings = []struct {
	dir  entities.Direction
	keys []ebiten.Key
}{
	{entities.DirUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{entities.DirDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{entities.DirLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{entities.DirRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

const (
	keyStop       = ebiten.KeySpace
	keyPause      = ebiten.KeyP
	keyQuit       = ebiten.KeyQ
	keyFullscreen = ebiten.KeyF
)

// Keyboard reduces key state to one game.Input per frame. It remembers the
// most recently pressed direction across frames.
type Keyboard struct {
	keys KeySource
	last entities.Direction
}

func NewKeyboard(keys KeySource) *Keyboard {
	if keys == nil {
		keys = ebitenKeys{}
	}
	return &Keyboard{keys: keys}
}

func (k *Keyboard) Next() game.Input {
	var in game.Input
	for _, b := range bindings {
		held, pressed := false, false
		for _, key := range b.keys {
			held = held || k.keys.Held(key)
			pressed = pressed || k.keys.JustPressed(key)
		}
		if pressed {
			k.last = b.dir
		}
		switch b.dir {
		case entities.DirUp:
			in.Up = held
		case entities.DirDown:
			in.Down = held
		case entities.DirLeft:
			in.Left = held
		case entities.DirRight:
			in.Right = held
		}
	}
	in.Last = k.last
	in.Stop = k.keys.JustPressed(keyStop)
	return in
}
