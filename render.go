package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"coinhop/level"
	"coinhop/sim"
)

var (
	groundColor   = colornames.Saddlebrown
	platformColor = colornames.Peru
	wallColor     = colornames.Sienna
	playerColor   = colornames.Royalblue
	facingColor   = colornames.Lightsteelblue
	coinColor     = colornames.Gold
	checkedColor  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// drawWorld renders one snapshot: tiles, coins, player, particles. All flat
// colors, no sprites.
func drawWorld(screen *ebiten.Image, snap sim.Snapshot, frames int) {
	screen.Fill(colornames.Darkslategray)

	for _, t := range snap.Tiles {
		c := platformColor
		switch t.Kind {
		case level.TileGround:
			c = groundColor
		case level.TileWall:
			c = wallColor
		}
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), level.TileSize, level.TileSize, c, false)
	}

	for _, coin := range snap.Coins {
		if coin.Collected {
			continue
		}
		// Display-only bob; the pickup circle doesn't move.
		bob := math.Sin(float64(frames)/12+coin.BobOffset) * 3
		vector.DrawFilledCircle(screen, float32(coin.Pos.X), float32(coin.Pos.Y+bob), float32(coin.Radius), coinColor, true)
	}

	drawPlayer(screen, snap)

	for _, p := range snap.Particles {
		vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), float32(p.Size), p.Color, false)
	}
}

func drawPlayer(screen *ebiten.Image, snap sim.Snapshot) {
	// Blink while the respawn timer runs.
	if snap.RespawnTimer > 0 && (snap.RespawnTimer/4)%2 == 0 {
		return
	}

	p := snap.Player
	vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size.X), float32(p.Size.Y), playerColor, false)

	// A small marker on the facing side, nudged by the walk frame.
	nudge := float32(0)
	if p.AnimFrame%2 == 1 {
		nudge = 2
	}
	eyeX := float32(p.Pos.X) + 4
	if p.FacingRight {
		eyeX = float32(p.Pos.X+p.Size.X) - 10
	}
	vector.DrawFilledRect(screen, eyeX, float32(p.Pos.Y)+6+nudge, 6, 6, facingColor, false)
}

// drawDebugOverlay strokes the tiles the broad phase visited this tick and
// the player's velocity vector.
func drawDebugOverlay(screen *ebiten.Image, snap sim.Snapshot) {
	for _, b := range snap.CheckedTiles {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, checkedColor, false)
	}

	p := snap.Player
	c := p.Box().Center()
	vector.StrokeLine(screen,
		float32(c.X), float32(c.Y),
		float32(c.X+p.Vel.X*8), float32(c.Y+p.Vel.Y*8),
		2, colornames.Lime, true)
}

func drawTouchButtons(screen *ebiten.Image, buttons []touchButton) {
	for i, b := range buttons {
		c := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
		if b.held {
			c = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x70}
		}
		vector.DrawFilledRect(screen, float32(b.box.X), float32(b.box.Y), float32(b.box.W), float32(b.box.H), c, false)

		// Crude glyphs: left arrow, right arrow, jump caret.
		cx := float32(b.box.X + b.box.W/2)
		cy := float32(b.box.Y + b.box.H/2)
		switch i {
		case 0:
			vector.StrokeLine(screen, cx+10, cy-10, cx-10, cy, 3, colornames.White, true)
			vector.StrokeLine(screen, cx-10, cy, cx+10, cy+10, 3, colornames.White, true)
		case 1:
			vector.StrokeLine(screen, cx-10, cy-10, cx+10, cy, 3, colornames.White, true)
			vector.StrokeLine(screen, cx+10, cy, cx-10, cy+10, 3, colornames.White, true)
		case 2:
			vector.StrokeLine(screen, cx-10, cy+8, cx, cy-8, 3, colornames.White, true)
			vector.StrokeLine(screen, cx, cy-8, cx+10, cy+8, 3, colornames.White, true)
		}
	}
}
