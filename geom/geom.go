// Package geom holds the plain value types and intersection tests the
// physics code is built on. Everything here is allocation-free and pure.
package geom

// Vec2 is a 2D displacement or velocity.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AABB is an axis-aligned box. X, Y is the top-left corner.
type AABB struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b overlap with positive area. Boxes that
// merely touch at an edge or corner do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// OverlapExtent returns the positive penetration depths on each axis when the
// boxes overlap. The second return is false when they don't. Display-only:
// resolution works from tile geometry directly.
func (a AABB) OverlapExtent(b AABB) (Vec2, bool) {
	if !a.Overlaps(b) {
		return Vec2{}, false
	}
	x := min(a.X+a.W, b.X+b.W) - max(a.X, b.X)
	y := min(a.Y+a.H, b.Y+b.H) - max(a.Y, b.Y)
	return Vec2{X: x, Y: y}, true
}

// Center returns the midpoint of the box.
func (a AABB) Center() Vec2 {
	return Vec2{X: a.X + a.W/2, Y: a.Y + a.H/2}
}

// Translate returns the box moved by d.
func (a AABB) Translate(d Vec2) AABB {
	return AABB{X: a.X + d.X, Y: a.Y + d.Y, W: a.W, H: a.H}
}

// Circle is a circle with center X, Y.
type Circle struct {
	X, Y, R float64
}

// Overlaps reports whether two circles overlap. The comparison is strict:
// circles whose center distance equals the radius sum do not overlap, so a
// zero-radius circle only ever overlaps at exact distance zero.
func (a Circle) Overlaps(b Circle) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	r := a.R + b.R
	return dx*dx+dy*dy < r*r
}

// OverlapsAABB clamps the circle center to the box to find the closest box
// point, then compares squared distance against the squared radius.
func (c Circle) OverlapsAABB(b AABB) bool {
	px := clamp(c.X, b.X, b.X+b.W)
	py := clamp(c.Y, b.Y, b.Y+b.H)
	dx := c.X - px
	dy := c.Y - py
	return dx*dx+dy*dy < c.R*c.R
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
