package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"pacman/internal/entities"
	"pacman/internal/game"
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	scaredColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	bannerColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	hintColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

var ghostColors = map[string]color.RGBA{
	"red":    {R: 255, G: 0, B: 0, A: 255},
	"pink":   {R: 255, G: 128, B: 255, A: 255},
	"orange": {R: 255, G: 128, B: 0, A: 255},
	"cyan":   {R: 0, G: 191, B: 255, A: 255},
}

// basicfont.Face7x13 is 7 pixels wide per character.
const glyphWidth = 7

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// solid is a one-pixel white source for DrawTriangles.
func solid() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// DrawSnapshot renders one frame of the game at native resolution.
func DrawSnapshot(dst *ebiten.Image, snap game.Snapshot, paused bool) {
	dst.Fill(color.Black)

	for _, o := range snap.Obstacles {
		vector.DrawFilledRect(dst, float32(o.Position.X), float32(o.Position.Y),
			float32(o.Width), float32(o.Height), wallColor, false)
	}
	for _, p := range snap.Pellets {
		vector.DrawFilledCircle(dst, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), pelletColor, true)
	}
	for _, p := range snap.PowerUps {
		vector.DrawFilledCircle(dst, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), pelletColor, true)
	}
	drawPlayer(dst, snap.Player)
	for _, g := range snap.Ghosts {
		c, ok := ghostColors[g.Color]
		if !ok {
			c = pelletColor
		}
		if g.Scared {
			c = scaredColor
		}
		vector.DrawFilledCircle(dst, float32(g.Position.X), float32(g.Position.Y), float32(g.Radius), c, true)
	}

	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	text.Draw(dst, fmt.Sprintf("Score: %d", snap.Score), basicfont.Face7x13, 4, 12, color.White)

	switch {
	case snap.State == game.Won:
		drawCentered(dst, "YOU WIN", w, h/2, bannerColor)
		drawCentered(dst, "Press Q to exit", w, h-8, hintColor)
	case snap.State == game.Lost:
		drawCentered(dst, "GAME OVER", w, h/2, bannerColor)
		drawCentered(dst, "Press Q to exit", w, h-8, hintColor)
	case paused:
		drawCentered(dst, "PAUSED", w, h/2, color.White)
	}
}

// drawPlayer draws a circle with a wedge cut out for the mouth, turned to
// the player's facing.
func drawPlayer(dst *ebiten.Image, p entities.Player) {
	cx, cy, r := float32(p.Position.X), float32(p.Position.Y), float32(p.Radius)
	mouth := float32(p.MouthPhase)
	if mouth <= 0 {
		vector.DrawFilledCircle(dst, cx, cy, r, playerColor, true)
		return
	}
	rot := float32(p.Rotation)

	var path vector.Path
	path.MoveTo(cx, cy)
	path.Arc(cx, cy, r, rot+mouth, rot+2*math.Pi-mouth, vector.Clockwise)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := playerColor.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(vs, is, solid(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func drawCentered(dst *ebiten.Image, s string, width, y int, c color.Color) {
	text.Draw(dst, s, basicfont.Face7x13, (width-len(s)*glyphWidth)/2, y, c)
}
