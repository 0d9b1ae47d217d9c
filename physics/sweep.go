// Package physics implements the collision routines the game is built
// around: a swept AABB time-of-impact test and the axis-separated tile
// resolver used by the live platforming loop. The two paths are deliberately
// separate; the resolver does not call Sweep.
package physics

import (
	"math"

	"coinhop/geom"
)

// SweepResult describes the first contact between a moving box and a
// stationary one within a single tick.
type SweepResult struct {
	// Time is the fraction of the velocity that can be applied before first
	// contact. 1 means no contact this tick.
	Time float64
	// Normal is the outward unit normal of the face that was hit: one
	// component is ±1, the other 0. Zero when there is no contact.
	Normal geom.Vec2
}

// SweptBounds returns the bounding box of the moving box's path over one
// tick, the box extruded along vel.
func SweptBounds(box geom.AABB, vel geom.Vec2) geom.AABB {
	out := box
	if vel.X < 0 {
		out.X += vel.X
	}
	out.W += math.Abs(vel.X)
	if vel.Y < 0 {
		out.Y += vel.Y
	}
	out.H += math.Abs(vel.Y)
	return out
}

// Sweep computes the time of impact of box moving by vel against the
// stationary target. A zero velocity component means that axis never
// constrains the result (entry -inf, exit +inf) rather than a division by
// zero. Exact corner hits resolve to the vertical face.
func Sweep(box geom.AABB, vel geom.Vec2, target geom.AABB) SweepResult {
	miss := SweepResult{Time: 1}

	// Broad phase: clearly disjoint pairs skip the entry/exit math.
	if !SweptBounds(box, vel).Overlaps(target) {
		return miss
	}

	var xEntryDist, xExitDist float64
	if vel.X > 0 {
		xEntryDist = target.X - (box.X + box.W)
		xExitDist = (target.X + target.W) - box.X
	} else {
		xEntryDist = (target.X + target.W) - box.X
		xExitDist = target.X - (box.X + box.W)
	}

	var yEntryDist, yExitDist float64
	if vel.Y > 0 {
		yEntryDist = target.Y - (box.Y + box.H)
		yExitDist = (target.Y + target.H) - box.Y
	} else {
		yEntryDist = (target.Y + target.H) - box.Y
		yExitDist = target.Y - (box.Y + box.H)
	}

	xEntry, xExit := math.Inf(-1), math.Inf(1)
	if vel.X != 0 {
		xEntry = xEntryDist / vel.X
		xExit = xExitDist / vel.X
	}

	yEntry, yExit := math.Inf(-1), math.Inf(1)
	if vel.Y != 0 {
		yEntry = yEntryDist / vel.Y
		yExit = yExitDist / vel.Y
	}

	entry := math.Max(xEntry, yEntry)
	exit := math.Min(xExit, yExit)

	if entry > exit || (xEntry < 0 && yEntry < 0) || xEntry > 1 || yEntry > 1 {
		return miss
	}

	res := SweepResult{Time: entry}
	if xEntry > yEntry {
		if vel.X > 0 {
			res.Normal = geom.Vec2{X: -1}
		} else {
			res.Normal = geom.Vec2{X: 1}
		}
	} else {
		// Ties prefer the vertical axis so corner hits are deterministic.
		if vel.Y > 0 {
			res.Normal = geom.Vec2{Y: -1}
		} else {
			res.Normal = geom.Vec2{Y: 1}
		}
	}
	return res
}
