// Package sim runs the game: a single-threaded, tick-driven simulation of
// one player in a tile level with coins and pickup particles. The caller
// invokes Step at most once at a time; all reads happen through Snapshot
// between ticks.
package sim

import (
	"image/color"
	"math/rand"
	"time"

	"golang.org/x/image/colornames"

	"coinhop/common"
	"coinhop/geom"
	"coinhop/level"
	"coinhop/physics"
)

// PickupPalette colors the particles a coin bursts into.
var PickupPalette = []color.RGBA{
	colornames.Gold,
	colornames.Orange,
	colornames.Yellow,
	colornames.White,
}

// Simulation owns the player, the level (tiles and coins) and the particle
// set exclusively. It is replaced-in-place by Reset.
type Simulation struct {
	cfg Config
	src string
	lvl *level.Level

	player    Player
	particles *ParticleSystem

	score        int
	won          bool
	tick         int
	respawnTimer int

	// checked is the per-tick scratch of tiles the broad phase visited,
	// cleared and repopulated every Step. Exposed read-only for the debug
	// overlay.
	checked []geom.AABB
}

// New builds a simulation from raw level text. Parsing never fails;
// malformed rows just produce fewer cells. A nil rng gets a time-seeded one.
func New(src string, cfg Config, rng *rand.Rand) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Simulation{
		cfg:       cfg,
		src:       src,
		particles: NewParticleSystem(cfg, rng),
	}
	s.loadLevel()
	return s
}

func (s *Simulation) loadLevel() {
	s.lvl = level.Parse(s.src)
	s.player = Player{
		Pos:         s.lvl.Spawn,
		Size:        geom.Vec2{X: s.cfg.PlayerWidth, Y: s.cfg.PlayerHeight},
		FacingRight: true,
	}
	s.particles.Reset()
	s.score = 0
	s.won = false
	s.tick = 0
	s.respawnTimer = 0
	s.checked = s.checked[:0]
}

// Reset reparses the level and restores the initial session state.
func (s *Simulation) Reset() {
	s.loadLevel()
}

// Load swaps in new level text and resets. Used by the live-reload watcher.
func (s *Simulation) Load(src string) {
	s.src = src
	s.loadLevel()
}

// Step advances the simulation one tick. While the session is won, the
// movement and collision stages are suspended; pickup, particles and
// animation still run (and are naturally no-ops or cosmetic).
func (s *Simulation) Step(in InputIntent) {
	s.tick++
	s.checked = s.checked[:0]

	// The respawn timer is purely cosmetic; it counts down starting the
	// tick after the respawn.
	if s.respawnTimer > 0 {
		s.respawnTimer--
	}
	if !s.won {
		s.stepMovement(in)
	}
	s.collectCoins()
	s.particles.Update()
	s.stepAnimation()
}

func (s *Simulation) stepMovement(in InputIntent) {
	p := &s.player
	cfg := s.cfg

	// Acceleration and facing. Holding both directions cancels out.
	if in.Left {
		p.Vel.X -= cfg.Accel
		if !in.Right {
			p.FacingRight = false
		}
	}
	if in.Right {
		p.Vel.X += cfg.Accel
		if !in.Left {
			p.FacingRight = true
		}
	}
	p.Vel.X = common.ClampSpeed(p.Vel.X, cfg.MaxRunSpeed)

	// Friction, with a snap to exactly zero so the player never creeps.
	friction := cfg.AirFriction
	if p.Grounded {
		friction = cfg.GroundFriction
	}
	p.Vel.X *= friction
	if common.Abs(p.Vel.X) < cfg.StopThreshold {
		p.Vel.X = 0
	}

	if in.Jump && p.Grounded {
		p.Vel.Y = cfg.JumpImpulse
		p.Grounded = false
	}

	p.Vel.Y += cfg.Gravity
	if p.Vel.Y > cfg.MaxFallSpeed {
		p.Vel.Y = cfg.MaxFallSpeed
	}

	// Tile resolution: horizontal pass then vertical pass, against the
	// tiles the broad phase picked out.
	s.checked = s.lvl.SolidsNear(s.checked, p.Box(), p.Vel)
	res := physics.ResolveTiles(p.Box(), p.Vel, s.checked)
	p.Pos = res.Pos
	p.Vel = res.Vel
	p.Grounded = res.Grounded

	// World bounds on x; falling past the bottom respawns.
	if p.Pos.X < 0 {
		p.Pos.X = 0
		if p.Vel.X < 0 {
			p.Vel.X = 0
		}
	}
	if maxX := s.lvl.PixelWidth() - p.Size.X; p.Pos.X > maxX {
		p.Pos.X = maxX
		if p.Vel.X > 0 {
			p.Vel.X = 0
		}
	}
	if p.Pos.Y > s.lvl.PixelHeight() {
		s.respawn()
	}
}

func (s *Simulation) respawn() {
	s.player.Pos = s.lvl.Spawn
	s.player.Vel = geom.Vec2{}
	s.respawnTimer = s.cfg.RespawnFrames
}

// collectCoins marks overlapped coins, spawns their burst and bumps the
// score, all in one place so a pickup can never double-count.
func (s *Simulation) collectCoins() {
	pc := s.player.PickupCircle()
	for i := range s.lvl.Coins {
		c := &s.lvl.Coins[i]
		if c.Collected {
			continue
		}
		if !pc.Overlaps(c.Circle()) {
			continue
		}
		c.Collected = true
		c.CollectedTick = s.tick
		s.score++
		s.particles.Spawn(c.Pos, s.cfg.PickupParticles, PickupPalette)
	}
	if !s.won && s.lvl.TotalCoins() > 0 && s.score == s.lvl.TotalCoins() {
		s.won = true
	}
}

func (s *Simulation) stepAnimation() {
	p := &s.player
	if common.Abs(p.Vel.X) > s.cfg.WalkAnimThreshold {
		p.AnimFrame = (s.tick / s.cfg.WalkAnimRate) % s.cfg.WalkAnimFrames
	} else {
		p.AnimFrame = 0
	}
}

// Snapshot is the read-only view the display layer takes once per tick.
type Snapshot struct {
	Player       Player
	Tiles        []level.Tile
	Coins        []level.Coin
	Particles    []Particle
	Score        int
	TotalCoins   int
	Won          bool
	RespawnTimer int
	CheckedTiles []geom.AABB
	Tick         int
	WorldW       float64
	WorldH       float64
}

// Snapshot copies out the mutable state. Tiles are immutable after parse and
// shared as-is.
func (s *Simulation) Snapshot() Snapshot {
	coins := make([]level.Coin, len(s.lvl.Coins))
	copy(coins, s.lvl.Coins)

	return Snapshot{
		Player:       s.player,
		Tiles:        s.lvl.Tiles,
		Coins:        coins,
		Particles:    append([]Particle(nil), s.particles.Live()...),
		Score:        s.score,
		TotalCoins:   s.lvl.TotalCoins(),
		Won:          s.won,
		RespawnTimer: s.respawnTimer,
		CheckedTiles: append([]geom.AABB(nil), s.checked...),
		Tick:         s.tick,
		WorldW:       s.lvl.PixelWidth(),
		WorldH:       s.lvl.PixelHeight(),
	}
}
