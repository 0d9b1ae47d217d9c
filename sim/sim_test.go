package sim

import (
	"math/rand"
	"testing"

	"coinhop/geom"
	"coinhop/level"
)

const flatTwoCoinLevel = "" +
	"..........\n" +
	"..........\n" +
	"..C....C..\n" +
	"##########"

func newTestSim(src string) *Simulation {
	return New(src, DefaultConfig(), rand.New(rand.NewSource(42)))
}

func stepN(s *Simulation, n int, in InputIntent) {
	for i := 0; i < n; i++ {
		s.Step(in)
	}
}

func TestFallAndLandExactly(t *testing.T) {
	s := newTestSim(flatTwoCoinLevel)

	stepN(s, 120, InputIntent{})

	snap := s.Snapshot()
	if !snap.Player.Grounded {
		t.Fatalf("player should be grounded after settling")
	}
	wantY := 3*level.TileSize - s.cfg.PlayerHeight
	if snap.Player.Pos.Y != wantY {
		t.Fatalf("pos.Y = %v, want %v (flush on the floor)", snap.Player.Pos.Y, wantY)
	}
	if snap.Player.Vel.Y != 0 {
		t.Fatalf("vel.Y = %v, want 0 at rest", snap.Player.Vel.Y)
	}
}

func TestJumpLeavesGroundAndLandsAgain(t *testing.T) {
	s := newTestSim(flatTwoCoinLevel)
	stepN(s, 120, InputIntent{})

	s.Step(InputIntent{Jump: true})
	snap := s.Snapshot()
	if snap.Player.Grounded {
		t.Fatalf("player should be airborne right after jumping")
	}
	if snap.Player.Vel.Y >= 0 {
		t.Fatalf("vel.Y = %v, want upward (negative)", snap.Player.Vel.Y)
	}

	stepN(s, 120, InputIntent{})
	snap = s.Snapshot()
	if !snap.Player.Grounded {
		t.Fatalf("player should land again")
	}
	wantY := 3*level.TileSize - s.cfg.PlayerHeight
	if snap.Player.Pos.Y != wantY {
		t.Fatalf("pos.Y = %v, want %v after landing", snap.Player.Pos.Y, wantY)
	}
}

func TestWalkCollectsBothCoinsAndWins(t *testing.T) {
	s := newTestSim(flatTwoCoinLevel)

	prevScore := 0
	wonTick := -1
	for i := 0; i < 1000; i++ {
		s.Step(InputIntent{Right: true})
		snap := s.Snapshot()

		if snap.Score < prevScore {
			t.Fatalf("score decreased: %d -> %d", prevScore, snap.Score)
		}
		prevScore = snap.Score

		if snap.Won && wonTick < 0 {
			wonTick = snap.Tick
			if snap.Score != snap.TotalCoins {
				t.Fatalf("won with score %d of %d", snap.Score, snap.TotalCoins)
			}
		}
		if snap.Won && wonTick >= 0 && snap.Score != 2 {
			t.Fatalf("score changed after winning: %d", snap.Score)
		}
	}

	snap := s.Snapshot()
	if snap.Score != 2 || !snap.Won {
		t.Fatalf("end state score=%d won=%v, want 2 and true", snap.Score, snap.Won)
	}
	if wonTick < 0 {
		t.Fatalf("never won")
	}
	if got := s.particles.TotalSpawned(); got != 24 {
		t.Fatalf("cumulative particles spawned = %d, want 24 (12 per pickup)", got)
	}
	for _, c := range snap.Coins {
		if !c.Collected {
			t.Fatalf("coin %+v left uncollected", c.Pos)
		}
		if c.CollectedTick <= 0 {
			t.Fatalf("coin %+v has no collection tick", c.Pos)
		}
	}
}

func TestWonSuspendsMovement(t *testing.T) {
	s := newTestSim(flatTwoCoinLevel)
	for i := 0; i < 1000 && !s.won; i++ {
		s.Step(InputIntent{Right: true})
	}
	if !s.won {
		t.Fatalf("never won")
	}

	pos := s.Snapshot().Player.Pos
	stepN(s, 30, InputIntent{Left: true, Jump: true})
	snap := s.Snapshot()
	if snap.Player.Pos != pos {
		t.Fatalf("player moved while won: %+v -> %+v", pos, snap.Player.Pos)
	}
	if !snap.Won || snap.Score != 2 {
		t.Fatalf("won state regressed: won=%v score=%d", snap.Won, snap.Score)
	}
	// Housekeeping still runs: leftover pickup particles retire.
	stepN(s, DefaultConfig().ParticleMaxLife+1, InputIntent{})
	if s.particles.Len() != 0 {
		t.Fatalf("%d particles still alive after their max life", s.particles.Len())
	}
}

func TestRespawnAfterFallingOff(t *testing.T) {
	// Two floor tiles and a pit on the right.
	src := "" +
		"....\n" +
		"....\n" +
		"##.."
	s := newTestSim(src)

	respawned := false
	for i := 0; i < 600; i++ {
		s.Step(InputIntent{Right: true})
		if s.Snapshot().RespawnTimer > 0 {
			respawned = true
			break
		}
	}
	if !respawned {
		t.Fatalf("player never fell off and respawned")
	}

	snap := s.Snapshot()
	if snap.Player.Pos != (geom.Vec2{X: level.TileSize, Y: level.TileSize}) {
		t.Fatalf("respawned at %+v, want the spawn point", snap.Player.Pos)
	}
	if snap.Player.Vel != (geom.Vec2{}) {
		t.Fatalf("velocity not zeroed on respawn: %+v", snap.Player.Vel)
	}
	if snap.RespawnTimer != DefaultConfig().RespawnFrames {
		t.Fatalf("respawn timer = %d, want %d", snap.RespawnTimer, DefaultConfig().RespawnFrames)
	}

	// Cosmetic timer counts down to zero and stays there.
	stepN(s, DefaultConfig().RespawnFrames, InputIntent{})
	if got := s.Snapshot().RespawnTimer; got != 0 {
		t.Fatalf("respawn timer = %d after countdown, want 0", got)
	}
}

func TestResetRestoresEverything(t *testing.T) {
	s := newTestSim(flatTwoCoinLevel)
	for i := 0; i < 1000 && s.score == 0; i++ {
		s.Step(InputIntent{Right: true})
	}
	if s.score == 0 {
		t.Fatalf("never collected a coin")
	}

	s.Reset()
	snap := s.Snapshot()
	if snap.Score != 0 || snap.Won {
		t.Fatalf("score=%d won=%v after reset", snap.Score, snap.Won)
	}
	for _, c := range snap.Coins {
		if c.Collected {
			t.Fatalf("coin %+v still collected after reset", c.Pos)
		}
	}
	if snap.Player.Pos != (geom.Vec2{X: level.TileSize, Y: level.TileSize}) {
		t.Fatalf("player at %+v after reset, want spawn", snap.Player.Pos)
	}
	if len(snap.Particles) != 0 {
		t.Fatalf("%d particles survived reset", len(snap.Particles))
	}
	if snap.Tick != 0 {
		t.Fatalf("tick = %d after reset, want 0", snap.Tick)
	}
}

func TestCheckedTilesAreAPerTickScratch(t *testing.T) {
	// Tall level: the player spends the first ticks far from any tile.
	src := "" +
		".P........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"..........\n" +
		"##########"
	s := newTestSim(src)

	s.Step(InputIntent{})
	if got := s.Snapshot().CheckedTiles; len(got) != 0 {
		t.Fatalf("checked %d tiles in open air, want 0", len(got))
	}

	stepN(s, 300, InputIntent{})
	if got := s.Snapshot().CheckedTiles; len(got) == 0 {
		t.Fatalf("standing on the floor should check nearby tiles")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestSim(flatTwoCoinLevel)
	snap := s.Snapshot()
	if len(snap.Coins) == 0 {
		t.Fatalf("expected coins in snapshot")
	}
	snap.Coins[0].Collected = true
	if s.lvl.Coins[0].Collected {
		t.Fatalf("mutating the snapshot leaked into the simulation")
	}
}
