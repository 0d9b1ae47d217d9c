package sim

import "coinhop/geom"

// Player is the single controllable actor. The simulation owns it
// exclusively; nothing else mutates it.
type Player struct {
	Pos         geom.Vec2 // top-left corner
	Size        geom.Vec2
	Vel         geom.Vec2
	Grounded    bool
	FacingRight bool
	AnimFrame   int
}

func (p *Player) Box() geom.AABB {
	return geom.AABB{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}

// PickupCircle is the bounding circle used for coin collection, centered on
// the player box with radius half the player width.
func (p *Player) PickupCircle() geom.Circle {
	c := p.Box().Center()
	return geom.Circle{X: c.X, Y: c.Y, R: p.Size.X / 2}
}
