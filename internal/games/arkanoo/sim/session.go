// Package sim advances one play session by fixed ticks and resolves every
// collision between entities. It never fails: every edge case saturates or
// branches.
package sim

import (
	"math/rand/v2"

	"github.com/vovakirdan/arkanoo/internal/config"
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

// Heart icons in the HUD, in field pixels. Heart i is drawn at
// (heartX - i*heartGap, heartY).
const (
	heartX   = entity.FieldWidth - 40
	heartY   = 20.0
	heartGap = 30.0
)

// Portal is the end-of-level vortex triggered by a fast ball.
type Portal struct {
	Active  bool
	Latched bool // fired already this level
	Timer   int  // completion ticks once no blocks remain
	Angle   float64
}

// Session is the whole mutable state of one game. The state machine owns it
// and only Advance mutates it during a tick.
type Session struct {
	cfg        config.Config
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	Score         uint32
	Lives         int
	Level         int
	Frame         uint64
	MaxSpeed      float64 // px/s record across the session
	MaxSpeedFrame uint64

	Portal            Portal
	BonusCooldown     int
	LifeLostThisLevel bool
	GravityMode       bool

	Paddle      *entity.Paddle
	Balls       []*entity.Ball
	Blocks      []*entity.Block
	PowerUps    []*entity.PowerUp
	Projectiles []*entity.Projectile
	Particles   []*entity.Particle

	// Thief is the penguin carrying off the last lost heart, or nil.
	Thief      *entity.Penguin
	StolenLife int

	pending Report
}

// NewSession creates a session at level 0 with no blocks. Call StartLevel
// before the first tick.
func NewSession(cfg config.Config, seed uint64) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d)),
	}
	s.GravityMode = cfg.Physics.GravityMode
	s.Reset()
	return s
}

// Config returns the rules the session runs with.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Reset restores score, lives and records for a brand new game.
func (s *Session) Reset() {
	s.Score = 0
	s.Lives = min(s.cfg.Gameplay.Lives, s.cfg.Gameplay.MaxLives)
	s.Level = 0
	s.Frame = 0
	s.MaxSpeed = 0
	s.MaxSpeedFrame = 0
	s.Paddle = entity.NewPaddle()
	s.Balls = nil
	s.Blocks = nil
	s.clearLevelState()
}

// StartLevel installs a layout and resets everything scoped to one level.
func (s *Session) StartLevel(n int, blocks []entity.Block) {
	s.Level = n
	s.Paddle = entity.NewPaddle()
	s.Balls = []*entity.Ball{entity.NewAttachedBall(s.Paddle, s.cfg.Physics.LaunchDelay)}

	s.Blocks = make([]*entity.Block, 0, len(blocks))
	for i := range blocks {
		b := blocks[i]
		if b.Kind == entity.KindIce && s.cfg.Gameplay.IceHealth > 0 {
			b.Health = s.cfg.Gameplay.IceHealth
			b.MaxHealth = b.Health
		}
		s.Blocks = append(s.Blocks, &b)
	}
	s.clearLevelState()
}

func (s *Session) clearLevelState() {
	s.PowerUps = nil
	s.Projectiles = nil
	s.Particles = nil
	s.Portal = Portal{}
	s.BonusCooldown = 0
	s.LifeLostThisLevel = false
	s.Thief = nil
	s.StolenLife = -1
	s.pending = Report{}
}

// AddScore adds points to the score.
func (s *Session) AddScore(points int) {
	if points <= 0 {
		return
	}
	s.Score += uint32(points) //#nosec G115 -- points is positive
	s.pending.ScoreDelta += points
}

// Penalize subtracts points, stopping at zero.
func (s *Session) Penalize(points int) {
	if points <= 0 {
		return
	}
	taken := min(uint32(points), s.Score) //#nosec G115 -- points is positive
	s.Score -= taken
	s.pending.ScoreDelta -= int(taken)
}

// ActiveBalls counts balls still in play.
func (s *Session) ActiveBalls() int {
	n := 0
	for _, b := range s.Balls {
		if b.Active {
			n++
		}
	}
	return n
}

// RemainingBlocks counts blocks that must still be destroyed.
func (s *Session) RemainingBlocks() int {
	n := 0
	for _, b := range s.Blocks {
		if b.Active && b.Destructible() {
			n++
		}
	}
	return n
}

// HeartPosition returns where the HUD draws heart i.
func HeartPosition(i int) (float64, float64) {
	return heartX - float64(i)*heartGap, heartY
}

// MovePaddle places the paddle center at a fraction of the field width.
func (s *Session) MovePaddle(fraction float64) {
	s.Paddle.MoveCenterTo(core.ClampF(fraction, 0, 1) * entity.FieldWidth)
}

// NudgePaddle moves the paddle one step left (dir < 0) or right (dir > 0).
func (s *Session) NudgePaddle(dir int) {
	switch {
	case dir < 0:
		s.Paddle.Nudge(-s.cfg.Gameplay.PaddleStep)
	case dir > 0:
		s.Paddle.Nudge(s.cfg.Gameplay.PaddleStep)
	}
}

// LaunchAttached releases every ball resting on the paddle.
func (s *Session) LaunchAttached() {
	for _, b := range s.Balls {
		if b.Active && b.Attached {
			s.launch(b)
		}
	}
}

// FireRocket shoots a rocket from the paddle center. Without ammo it does nothing.
func (s *Session) FireRocket() bool {
	if !s.Paddle.TakeRocket() {
		return false
	}
	cx, _ := s.Paddle.Center()
	s.Projectiles = append(s.Projectiles, entity.NewProjectile(cx, s.Paddle.Y))
	s.emit(core.SoundFire)
	return true
}

func (s *Session) launch(b *entity.Ball) {
	speed := s.difficulty.LaunchSpeed(s.cfg.Physics.LaunchSpeed, int(s.Score), s.Level)
	dirs := [3]float64{-1, 0, 1}
	b.Launch(dirs[s.rng.IntN(len(dirs))]*speed, -speed)
}

func (s *Session) gravity() float64 {
	if s.GravityMode {
		return s.cfg.Physics.Gravity
	}
	return 0
}

// Compact drops deactivated entities from every collection.
func (s *Session) Compact() {
	s.Balls = compact(s.Balls, func(b *entity.Ball) bool { return b.Active })
	s.Blocks = compact(s.Blocks, func(b *entity.Block) bool { return b.Active })
	s.PowerUps = compact(s.PowerUps, func(p *entity.PowerUp) bool { return p.Active })
	s.Projectiles = compact(s.Projectiles, func(p *entity.Projectile) bool { return p.Active })
	s.Particles = compact(s.Particles, func(p *entity.Particle) bool { return p.Alive() })
	if s.Thief != nil && s.Thief.Done() {
		s.Thief = nil
		s.StolenLife = -1
	}
}

func compact[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}
