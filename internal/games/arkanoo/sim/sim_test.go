package sim

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/arkanoo/internal/config"
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/level"
)

// newTestSession returns a session without random drops, holding a single
// block in the top-left corner so the level does not complete on its own.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.PowerUps.DropChance = 0
	s := NewSession(cfg, 42)
	s.StartLevel(1, []entity.Block{entity.NewBlock(0, 0, 0, entity.KindNormal, 2)})
	return s
}

func addBlock(s *Session, row, col int, kind entity.Kind) *entity.Block {
	b := entity.NewBlock(row, col, row%6, kind, s.cfg.Gameplay.IceHealth)
	s.Blocks = append(s.Blocks, &b)
	return &b
}

func freeBall(s *Session, x, y, vx, vy float64) *entity.Ball {
	b := entity.NewFreeBall(x, y, vx, vy)
	s.Balls = []*entity.Ball{b}
	return b
}

func TestAttachedBallLaunchesAfterCountdown(t *testing.T) {
	cfg := config.DefaultConfig()
	s := NewSession(cfg, 1)
	s.StartLevel(1, level.Generate(1))

	b := s.Balls[0]
	for i := 1; i < cfg.Physics.LaunchDelay; i++ {
		Advance(s)
		if !b.Attached {
			t.Fatalf("ball launched early at tick %d", i)
		}
	}

	Advance(s)
	if b.Attached {
		t.Fatal("ball should launch when the countdown runs out")
	}
	if b.VY != -4 {
		t.Errorf("launch vy = %f, expected -4", b.VY)
	}
	if b.VX != -4 && b.VX != 0 && b.VX != 4 {
		t.Errorf("launch vx = %f, expected one of -4, 0, 4", b.VX)
	}
}

func TestAttachedBallFollowsPaddle(t *testing.T) {
	s := newTestSession(t)
	s.NudgePaddle(1)
	s.NudgePaddle(1)
	Advance(s)

	px, _ := s.Paddle.Center()
	bx, _ := s.Balls[0].Center()
	if bx != px {
		t.Errorf("attached ball x = %f, expected paddle center %f", bx, px)
	}
}

func TestLaunchAttachedOnInput(t *testing.T) {
	s := newTestSession(t)
	s.LaunchAttached()
	if s.Balls[0].Attached {
		t.Error("launch input should release the ball immediately")
	}
}

func TestLifeLossPenaltySaturates(t *testing.T) {
	s := newTestSession(t)
	s.Score = 10
	s.Balls[0].Active = false

	r := Advance(s)
	if r.Outcome != OutcomeLifeLost {
		t.Fatalf("outcome = %s, expected life_lost", r.Outcome)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Score)
	}
	if r.ScoreDelta != -10 {
		t.Errorf("score delta = %d, expected -10", r.ScoreDelta)
	}
	if s.Lives != 2 {
		t.Errorf("lives = %d, expected 2", s.Lives)
	}
	if !s.LifeLostThisLevel {
		t.Error("life-lost flag should be set")
	}
	if !slices.Contains(r.Sounds, core.SoundLifeLost) {
		t.Error("expected a life-lost cue")
	}
	if s.Thief == nil || s.StolenLife != 2 {
		t.Errorf("penguin should steal heart 2, thief=%v stolen=%d", s.Thief, s.StolenLife)
	}

	s.Compact()
	if len(s.Balls) != 1 || !s.Balls[0].Attached {
		t.Error("a fresh attached ball should be served")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	s := newTestSession(t)
	s.Lives = 1
	s.Balls[0].Active = false

	r := Advance(s)
	if r.Outcome != OutcomeGameOver {
		t.Fatalf("outcome = %s, expected game_over", r.Outcome)
	}
	if s.Lives != 0 {
		t.Errorf("lives = %d, expected 0", s.Lives)
	}
}

func TestGhostBallTraversesBlocks(t *testing.T) {
	s := newTestSession(t)
	s.Blocks = nil
	for _, rc := range [][2]int{{3, 5}, {3, 6}, {4, 5}, {4, 6}} {
		addBlock(s, rc[0], rc[1], entity.KindNormal)
	}

	// Straddles the corner shared by all four blocks.
	corner := s.Blocks[3]
	b := freeBall(s, corner.X-6, corner.Y-6, 3, -4)
	s.collideBallBlocks(b, true)

	for i, blk := range s.Blocks {
		if blk.Active {
			t.Errorf("block %d should be destroyed by the ghost ball", i)
		}
	}
	if b.VX != 3 || b.VY != -4 {
		t.Errorf("ghost ball velocity changed to (%f, %f)", b.VX, b.VY)
	}
	if s.Score != 40 {
		t.Errorf("score = %d, expected 40", s.Score)
	}
}

func TestNonGhostStopsAtFirstBlock(t *testing.T) {
	s := newTestSession(t)
	s.Blocks = nil
	for _, rc := range [][2]int{{3, 5}, {3, 6}, {4, 5}, {4, 6}} {
		addBlock(s, rc[0], rc[1], entity.KindNormal)
	}

	corner := s.Blocks[3]
	b := freeBall(s, corner.X-6, corner.Y-6, 3, -4)
	s.collideBallBlocks(b, false)

	destroyed := 0
	for _, blk := range s.Blocks {
		if !blk.Active {
			destroyed++
		}
	}
	if destroyed != 1 {
		t.Errorf("destroyed %d blocks, expected exactly 1", destroyed)
	}
}

func TestBlockReflectionAxis(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64 // ball offset from block top-left
		vx, vy         float64
		wantVX, wantVY float64
		wantX, wantY   float64 // ball offset after push-out
	}{
		{"right side", 55, 5, -3, 2, 3, 2, 60, 5},
		{"left side", -7, 5, 3, 2, -3, 2, -12, 5},
		{"top face", 20, -8, 2, 4, 2, -4, 20, -12},
		{"bottom face", 20, 17, 2, -4, 2, 4, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t)
			s.Blocks = nil
			blk := addBlock(s, 3, 5, entity.KindIndestructible)
			b := freeBall(s, blk.X+tc.x, blk.Y+tc.y, tc.vx, tc.vy)

			s.collideBallBlocks(b, false)

			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity = (%f, %f), expected (%f, %f)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
			if b.X-blk.X != tc.wantX || b.Y-blk.Y != tc.wantY {
				t.Errorf("offset = (%f, %f), expected (%f, %f)", b.X-blk.X, b.Y-blk.Y, tc.wantX, tc.wantY)
			}
			if !blk.Active {
				t.Error("indestructible block should survive")
			}
		})
	}
}

func TestBlockKindOutcomes(t *testing.T) {
	tests := []struct {
		kind       entity.Kind
		wantActive bool
		wantHealth int
		wantScore  uint32
		wantSound  core.Sound
	}{
		{entity.KindNormal, false, 0, 10, core.SoundGlassBreak},
		{entity.KindIce, true, 1, 0, core.SoundGlassBreak},
		{entity.KindIndestructible, true, 1, 0, core.SoundBounce},
		{entity.KindExplosive, false, 0, 10, core.SoundExplosion},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := newTestSession(t)
			s.Blocks = nil
			blk := addBlock(s, 3, 5, tc.kind)
			b := freeBall(s, blk.X+20, blk.Y+17, 2, -4)

			s.collideBallBlocks(b, false)
			r := s.drain(OutcomeNone)

			if blk.Active != tc.wantActive || blk.Health != tc.wantHealth {
				t.Errorf("active=%v health=%d, expected active=%v health=%d", blk.Active, blk.Health, tc.wantActive, tc.wantHealth)
			}
			if s.Score != tc.wantScore {
				t.Errorf("score = %d, expected %d", s.Score, tc.wantScore)
			}
			if !slices.Contains(r.Sounds, tc.wantSound) {
				t.Errorf("sounds %v missing %s", r.Sounds, tc.wantSound)
			}
			if b.VY != 4 {
				t.Errorf("ball should reflect off the bottom face, vy = %f", b.VY)
			}
		})
	}
}

func TestExplosiveDestroysNeighbours(t *testing.T) {
	s := newTestSession(t)
	s.Blocks = nil
	explosive := addBlock(s, 4, 10, entity.KindExplosive)
	neighbours := []*entity.Block{
		addBlock(s, 4, 9, entity.KindNormal),
		addBlock(s, 4, 11, entity.KindNormal),
		addBlock(s, 5, 10, entity.KindNormal),
	}
	far := addBlock(s, 0, 0, entity.KindNormal)
	solid := addBlock(s, 3, 10, entity.KindIndestructible)

	b := freeBall(s, explosive.X+24, explosive.Y+16, 2, -4)
	s.collideBallBlocks(b, false)
	r := s.drain(OutcomeNone)

	if explosive.Active {
		t.Error("explosive block should be destroyed")
	}
	for i, n := range neighbours {
		if n.Active {
			t.Errorf("neighbour %d should be destroyed by the blast", i)
		}
	}
	if !far.Active {
		t.Error("block outside the radius should survive")
	}
	if !solid.Active {
		t.Error("indestructible block should survive the blast")
	}
	if want := 4 * s.cfg.Scoring.Block; r.ScoreDelta != want {
		t.Errorf("score delta = %d, expected %d", r.ScoreDelta, want)
	}
	if !slices.Contains(r.Sounds, core.SoundExplosion) {
		t.Error("expected an explosion cue")
	}
}

func TestPortalLatchesOncePerLevel(t *testing.T) {
	s := newTestSession(t)
	fast := func() { freeBall(s, 600, 400, 25, -25) }

	fast()
	r := Advance(s)
	if !s.Portal.Active || !s.Portal.Latched {
		t.Fatal("portal should open once the ball passes the threshold")
	}
	if r.ScoreDelta < s.cfg.Scoring.PortalBonus {
		t.Errorf("portal bonus missing, delta = %d", r.ScoreDelta)
	}
	if s.MaxSpeed < s.cfg.Speed.PortalThreshold || s.MaxSpeedFrame != s.Frame {
		t.Errorf("speed record not updated: %f at frame %d", s.MaxSpeed, s.MaxSpeedFrame)
	}

	s.Portal.Active = false
	fast()
	Advance(s)
	if s.Portal.Active {
		t.Error("portal must not reopen in the same level")
	}

	s.StartLevel(2, []entity.Block{entity.NewBlock(0, 0, 0, entity.KindNormal, 2)})
	fast()
	Advance(s)
	if !s.Portal.Active {
		t.Error("portal should be available again on a new level")
	}
}

func TestPortalSequenceCompletesLevel(t *testing.T) {
	s := newTestSession(t)
	addBlock(s, 9, 19, entity.KindIndestructible)
	s.Lives = 2
	s.openPortal()

	stages := map[PortalStage]bool{}
	var r Report
	for i := 0; i < 2000; i++ {
		stages[s.PortalStage()] = true
		r = Advance(s)
		if r.Outcome != OutcomeNone {
			break
		}
		for _, b := range s.Balls {
			if !b.Active {
				continue
			}
			if d := math.Hypot(b.X+entity.BallSize/2-entity.FieldWidth/2, b.Y+entity.BallSize/2-entity.FieldHeight/2); math.Abs(d-s.cfg.Portal.OrbitRadius) > 1e-6 {
				t.Fatalf("ball left its orbit: distance %f", d)
			}
		}
	}

	if r.Outcome != OutcomeLevelComplete {
		t.Fatalf("outcome = %s, expected level_complete", r.Outcome)
	}
	for _, st := range []PortalStage{PortalPulling, PortalOpen, PortalCollapse, PortalFlash, PortalFade} {
		if !stages[st] {
			t.Errorf("stage %s never reached", st)
		}
	}
	if s.RemainingBlocks() != 0 {
		t.Error("portal should swallow every block")
	}
	if s.Lives != 3 {
		t.Errorf("lives = %d, expected a refund to 3", s.Lives)
	}
}

func TestCompletionIgnoresIndestructible(t *testing.T) {
	s := newTestSession(t)
	s.Blocks = nil
	addBlock(s, 2, 2, entity.KindIndestructible)
	s.Lives = 3

	if r := Advance(s); r.Outcome != OutcomeLevelComplete {
		t.Fatalf("outcome = %s, expected level_complete", r.Outcome)
	}
	if s.Lives != 3 {
		t.Errorf("lives should stay capped at 3, got %d", s.Lives)
	}
}

func TestNoRefundAfterLifeLost(t *testing.T) {
	s := newTestSession(t)
	s.Blocks = nil
	s.Lives = 2
	s.LifeLostThisLevel = true

	if r := Advance(s); r.Outcome != OutcomeLevelComplete {
		t.Fatalf("outcome = %s, expected level_complete", r.Outcome)
	}
	if s.Lives != 2 {
		t.Errorf("lives = %d, expected no refund", s.Lives)
	}
}

func TestBallBallContact(t *testing.T) {
	s := newTestSession(t)
	a := entity.NewFreeBall(500, 300, 1, 2)
	b := entity.NewFreeBall(505, 300, -1, 3)
	s.Balls = []*entity.Ball{a, b}

	s.collideBalls()
	r := s.drain(OutcomeNone)

	if a.VY > -s.cfg.Physics.BallBallUpSpeed || b.VY > -s.cfg.Physics.BallBallUpSpeed {
		t.Errorf("both balls should head up fast enough: %f, %f", a.VY, b.VY)
	}
	if a.VX >= 0 || b.VX <= 0 {
		t.Errorf("balls should separate horizontally: a.vx=%f b.vx=%f", a.VX, b.VX)
	}
	if len(s.Particles) != contactRingSize {
		t.Errorf("particles = %d, expected a ring of %d", len(s.Particles), contactRingSize)
	}
	if len(r.Sounds) != 1 || r.Sounds[0] != core.SoundBounce {
		t.Errorf("sounds = %v, expected one bounce", r.Sounds)
	}
}

func TestPaddleHitAimAndSpin(t *testing.T) {
	s := newTestSession(t)
	s.Paddle.Nudge(18)
	s.Paddle.Update()

	px, _ := s.Paddle.Center()
	b := freeBall(s, px+20-entity.BallSize/2, s.Paddle.Y-5, 3, 4)

	s.collidePaddle()

	if b.VY != -4 {
		t.Errorf("vy = %f, expected -4", b.VY)
	}
	if math.Abs(b.VX-5) > 1e-9 {
		t.Errorf("vx = %f, expected 3 + 20*0.1", b.VX)
	}
	if math.Abs(b.Spin-(18*0.3+20*0.01)) > 1e-9 {
		t.Errorf("spin = %f, expected %f", b.Spin, 18*0.3+20*0.01)
	}
	if s.Paddle.SpinIntensity != 1 {
		t.Error("a moving paddle should discharge its spin")
	}
	if b.Y != s.Paddle.Y-entity.BallSize {
		t.Error("ball should be lifted onto the paddle")
	}

	s.Paddle.Update()
	slow := freeBall(s, px+20-entity.BallSize/2, s.Paddle.Y-5, 3, 4)
	s.collidePaddle()
	if math.Abs(slow.Spin-20*0.01) > 1e-9 {
		t.Errorf("still paddle spin = %f, expected offset-only spin", slow.Spin)
	}
}

func TestRocketFireAndBlast(t *testing.T) {
	s := newTestSession(t)
	if s.FireRocket() {
		t.Fatal("firing without ammo should do nothing")
	}

	target := addBlock(s, 9, 10, entity.KindNormal)
	s.Paddle.AddRocket()
	if !s.FireRocket() {
		t.Fatal("rocket should fire with ammo")
	}

	sawFire, sawBlast := false, false
	for i := 0; i < 120 && target.Active; i++ {
		r := Advance(s)
		sawFire = sawFire || slices.Contains(r.Sounds, core.SoundFire)
		sawBlast = sawBlast || slices.Contains(r.Sounds, core.SoundExplosion)
	}
	if target.Active {
		t.Fatal("rocket never destroyed the block")
	}
	if !sawFire || !sawBlast {
		t.Errorf("fire cue=%v explosion cue=%v, expected both", sawFire, sawBlast)
	}
}

func TestPowerUpPickup(t *testing.T) {
	tests := []struct {
		kind  entity.PowerKind
		check func(*Session) bool
	}{
		{entity.PowerExtraBall, func(s *Session) bool { return len(s.Balls) == 2 }},
		{entity.PowerLongPaddle, func(s *Session) bool { return s.Paddle.Width == entity.LongPaddleWidth }},
		{entity.PowerGhostBall, func(s *Session) bool { return s.Paddle.Ghost() }},
		{entity.PowerRocketAmmo, func(s *Session) bool { return s.Paddle.RocketAmmo == 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			s := newTestSession(t)
			px, _ := s.Paddle.Center()
			s.PowerUps = append(s.PowerUps, entity.NewPowerUp(px, s.Paddle.Y-10, tc.kind))

			r := Advance(s)
			if s.PowerUps[0].Active {
				t.Fatal("power-up should be collected")
			}
			if !tc.check(s) {
				t.Errorf("%s effect not applied", tc.kind)
			}
			if r.ScoreDelta != s.cfg.Scoring.PowerUp {
				t.Errorf("score delta = %d, expected %d", r.ScoreDelta, s.cfg.Scoring.PowerUp)
			}
		})
	}
}

func TestDropCooldown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PowerUps.DropChance = 1
	cfg.Difficulty.Enabled = false
	s := NewSession(cfg, 3)
	s.StartLevel(1, nil)

	for _, col := range []int{3, 4, 5} {
		addBlock(s, 2, col, entity.KindNormal)
	}
	cx, cy := s.Blocks[1].Center()
	s.explode(cx, cy, nil)

	if len(s.PowerUps) != 1 {
		t.Errorf("power-ups = %d, expected one because of the cooldown", len(s.PowerUps))
	}
	if s.BonusCooldown != cfg.PowerUps.Cooldown {
		t.Errorf("cooldown = %d, expected %d", s.BonusCooldown, cfg.PowerUps.Cooldown)
	}
}

func TestRollPowerUpWeights(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.PowerUps.Weights = config.PowerUpWeight{GhostBall: 1}
	s := NewSession(cfg, 9)

	for i := 0; i < 50; i++ {
		if k := s.rollPowerUp(); k != entity.PowerGhostBall {
			t.Fatalf("rolled %s with only ghost weighted", k)
		}
	}
}

func TestCompactRemovesInactive(t *testing.T) {
	s := newTestSession(t)
	s.Balls = append(s.Balls, entity.NewFreeBall(0, 0, 2, 2))
	s.Balls[1].Active = false
	s.Blocks[0].Active = false
	s.Particles = []*entity.Particle{{Life: 0}, {Life: 5}}

	s.Compact()

	if len(s.Balls) != 1 || len(s.Blocks) != 0 || len(s.Particles) != 1 {
		t.Errorf("after Compact: balls=%d blocks=%d particles=%d", len(s.Balls), len(s.Blocks), len(s.Particles))
	}
}

func TestGravityModeBendsBall(t *testing.T) {
	s := newTestSession(t)
	s.GravityMode = true
	b := freeBall(s, 600, 400, 3, -3)

	Advance(s)
	if want := -3 + s.cfg.Physics.Gravity; math.Abs(b.VY-want) > 1e-9 {
		t.Errorf("vy = %f, expected %f", b.VY, want)
	}
}
