package physics

import "coinhop/geom"

// ResolveResult is the outcome of one tick of tile resolution.
type ResolveResult struct {
	Pos      geom.Vec2 // corrected top-left position
	Vel      geom.Vec2 // velocity with blocked components zeroed
	Grounded bool      // true when a downward hit snapped the box onto a tile
}

// ResolveTiles applies one tick of axis-separated collision: the horizontal
// displacement is resolved against solids first, then the vertical one using
// the already-corrected x. A downward hit snaps the box onto the tile top and
// grounds it; an upward hit snaps to the tile bottom. Grounded is always
// recomputed from scratch. Every intersecting solid applies its snap (last
// write wins), which on a uniform grid leaves zero residual overlap.
//
// Resolution is best-effort when solids themselves overlap; levels are not
// supposed to do that.
func ResolveTiles(box geom.AABB, vel geom.Vec2, solids []geom.AABB) ResolveResult {
	res := ResolveResult{}

	moved := box
	moved.X += vel.X
	hitX := false
	for _, s := range solids {
		if !moved.Overlaps(s) {
			continue
		}
		if vel.X > 0 {
			moved.X = s.X - box.W
			hitX = true
		} else if vel.X < 0 {
			moved.X = s.X + s.W
			hitX = true
		}
	}
	if hitX {
		vel.X = 0
	}
	box.X = moved.X

	moved = box
	moved.Y += vel.Y
	hitY := false
	for _, s := range solids {
		if !moved.Overlaps(s) {
			continue
		}
		if vel.Y > 0 {
			moved.Y = s.Y - box.H
			res.Grounded = true
			hitY = true
		} else if vel.Y < 0 {
			moved.Y = s.Y + s.H
			hitY = true
		}
	}
	if hitY {
		vel.Y = 0
	}
	box.Y = moved.Y

	res.Pos = geom.Vec2{X: box.X, Y: box.Y}
	res.Vel = vel
	return res
}
