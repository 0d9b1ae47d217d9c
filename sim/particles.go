package sim

import (
	"image/color"
	"math"
	"math/rand"

	"coinhop/geom"
)

// Particle is a short-lived bit of visual feedback. It carries no reference
// back to anything; the particle system owns the whole set.
type Particle struct {
	Pos     geom.Vec2
	Vel     geom.Vec2
	Life    int
	MaxLife int
	Color   color.RGBA
	Size    float64
}

// ParticleSystem spawns, integrates and retires particles. Randomness comes
// from the injected source so tests can seed it.
type ParticleSystem struct {
	live    []Particle
	spawned int

	gravity     float64
	speed       float64
	speedJitter float64
	upwardBias  float64
	minLife     int
	maxLife     int

	rng *rand.Rand
}

func NewParticleSystem(cfg Config, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		gravity:     cfg.ParticleGravity,
		speed:       cfg.ParticleSpeed,
		speedJitter: cfg.ParticleSpeedJitter,
		upwardBias:  cfg.ParticleUpwardBias,
		minLife:     cfg.ParticleMinLife,
		maxLife:     cfg.ParticleMaxLife,
		rng:         rng,
	}
}

// Spawn adds count particles at pos. Directions are spread evenly around the
// circle with a random speed jitter and a fixed upward bias; lifetimes are
// uniform in [min, max].
func (ps *ParticleSystem) Spawn(pos geom.Vec2, count int, palette []color.RGBA) {
	for i := 0; i < count; i++ {
		angle := (float64(i)/float64(count))*2*math.Pi + ps.rng.Float64()*0.4
		speed := ps.speed + ps.rng.Float64()*ps.speedJitter

		life := ps.minLife
		if ps.maxLife > ps.minLife {
			life += ps.rng.Intn(ps.maxLife - ps.minLife + 1)
		}

		c := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		if len(palette) > 0 {
			c = palette[ps.rng.Intn(len(palette))]
		}

		ps.live = append(ps.live, Particle{
			Pos:     pos,
			Vel:     geom.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle)*speed + ps.upwardBias},
			Life:    life,
			MaxLife: life,
			Color:   c,
			Size:    2 + ps.rng.Float64()*2,
		})
		ps.spawned++
	}
}

// Update advances every particle one tick and drops the ones whose life hits
// zero. Survivors keep their relative order; the filter is in place, no
// index shifting mid-iteration.
func (ps *ParticleSystem) Update() {
	live := ps.live[:0]
	for i := range ps.live {
		p := ps.live[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += ps.gravity
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	ps.live = live
}

// Live returns the current particle set. Callers must treat it as a
// snapshot; the next Update invalidates it.
func (ps *ParticleSystem) Live() []Particle {
	return ps.live
}

func (ps *ParticleSystem) Len() int {
	return len(ps.live)
}

// TotalSpawned counts every particle ever spawned since the last Reset,
// including ones already retired.
func (ps *ParticleSystem) TotalSpawned() int {
	return ps.spawned
}

func (ps *ParticleSystem) Reset() {
	ps.live = ps.live[:0]
	ps.spawned = 0
}
