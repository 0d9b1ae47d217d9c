// Package level parses text-grid levels into immutable tiles plus the coins
// and spawn point that live alongside them.
package level

import (
	"math"
	"strings"

	"coinhop/geom"
)

// TileSize is the fixed grid cell size in pixels.
const TileSize = 32

// TileKind classifies a grid cell. Kind has no physical meaning; the
// resolver only cares about Solid.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileGround
	TilePlatform
	TileWall
)

func (k TileKind) String() string {
	switch k {
	case TileGround:
		return "ground"
	case TilePlatform:
		return "platform"
	case TileWall:
		return "wall"
	default:
		return "empty"
	}
}

// Tile is one grid-aligned solid cell. Position is always an exact multiple
// of TileSize. Tiles never change after parse.
type Tile struct {
	X, Y  float64
	Kind  TileKind
	Solid bool
}

func (t Tile) Box() geom.AABB {
	return geom.AABB{X: t.X, Y: t.Y, W: TileSize, H: TileSize}
}

// Coin is a collectible. Collected flips true exactly once per level
// instance; a reset replaces the whole level. BobOffset is a display-only
// phase constant fixed at parse time.
type Coin struct {
	Pos           geom.Vec2
	Radius        float64
	Collected     bool
	CollectedTick int
	BobOffset     float64
}

func (c Coin) Circle() geom.Circle {
	return geom.Circle{X: c.Pos.X, Y: c.Pos.Y, R: c.Radius}
}

// Level is the parsed form of one text grid. Owned by the simulation and
// replaced wholesale on reset.
type Level struct {
	Tiles []Tile
	Coins []Coin
	Spawn geom.Vec2

	// Width and Height are in cells.
	Width, Height int

	solid []bool // row-major occupancy for fast neighborhood queries
}

// DefaultCoinRadius is used when the caller doesn't override it.
const DefaultCoinRadius = 10

// Characters understood by Parse. Anything else is an empty cell.
const (
	cellSolid = '#'
	cellCoin  = 'C'
	cellSpawn = 'P'
)

// Parse reads an ordered sequence of rows into a Level. `#` is a solid tile
// (bottom row ground, any other row platform), `C` a coin, `P` the spawn
// point. Ragged rows are fine: short rows just produce fewer cells. World
// coordinates are column*TileSize, row*TileSize.
func Parse(src string) *Level {
	rows := strings.Split(strings.TrimRight(src, "\n"), "\n")

	lvl := &Level{
		Height: len(rows),
		Spawn:  geom.Vec2{X: TileSize, Y: TileSize},
	}
	for _, row := range rows {
		if len(row) > lvl.Width {
			lvl.Width = len(row)
		}
	}
	lvl.solid = make([]bool, lvl.Width*lvl.Height)

	for y, row := range rows {
		for x, ch := range []byte(row) {
			wx := float64(x) * TileSize
			wy := float64(y) * TileSize
			switch ch {
			case cellSolid:
				kind := TilePlatform
				if y == len(rows)-1 {
					kind = TileGround
				}
				lvl.Tiles = append(lvl.Tiles, Tile{X: wx, Y: wy, Kind: kind, Solid: true})
				lvl.solid[y*lvl.Width+x] = true
			case cellCoin:
				lvl.Coins = append(lvl.Coins, Coin{
					Pos:       geom.Vec2{X: wx, Y: wy},
					Radius:    DefaultCoinRadius,
					BobOffset: float64(len(lvl.Coins)) * 0.9,
				})
			case cellSpawn:
				lvl.Spawn = geom.Vec2{X: wx, Y: wy}
			}
		}
	}
	return lvl
}

// PixelWidth returns the world width in pixels.
func (l *Level) PixelWidth() float64 {
	return float64(l.Width) * TileSize
}

// PixelHeight returns the world height in pixels.
func (l *Level) PixelHeight() float64 {
	return float64(l.Height) * TileSize
}

// SolidAt reports whether the cell at column x, row y is solid. Out-of-range
// cells are empty.
func (l *Level) SolidAt(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return false
	}
	return l.solid[y*l.Width+x]
}

// SolidsNear collects the boxes of solid tiles within one tile of the area
// the box sweeps this tick. This is the broad phase for the resolver; the
// returned slice is appended to dst so the caller can reuse a scratch buffer.
func (l *Level) SolidsNear(dst []geom.AABB, box geom.AABB, vel geom.Vec2) []geom.AABB {
	swept := box
	if vel.X < 0 {
		swept.X += vel.X
	}
	swept.W += math.Abs(vel.X)
	if vel.Y < 0 {
		swept.Y += vel.Y
	}
	swept.H += math.Abs(vel.Y)

	minX := int(math.Floor(swept.X/TileSize)) - 1
	minY := int(math.Floor(swept.Y/TileSize)) - 1
	maxX := int(math.Floor((swept.X + swept.W) / TileSize))
	maxY := int(math.Floor((swept.Y + swept.H) / TileSize))

	for y := minY; y <= maxY+1; y++ {
		for x := minX; x <= maxX+1; x++ {
			if l.SolidAt(x, y) {
				dst = append(dst, geom.AABB{
					X: float64(x) * TileSize,
					Y: float64(y) * TileSize,
					W: TileSize,
					H: TileSize,
				})
			}
		}
	}
	return dst
}

// TotalCoins returns the number of coins the level was parsed with.
func (l *Level) TotalCoins() int {
	return len(l.Coins)
}
