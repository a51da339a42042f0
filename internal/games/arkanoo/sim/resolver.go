package sim

import (
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

// Advance runs one fixed tick. The order matters: paddle, balls, ball-ball,
// ball-paddle, ball-block, rockets, power-ups, portal, life loss, completion.
// Inactive entities stay in their slices until Compact.
func Advance(s *Session) Report {
	s.Frame++
	if s.BonusCooldown > 0 {
		s.BonusCooldown--
	}

	s.Paddle.Update()
	s.updateBalls()
	if !s.Portal.Active {
		s.collideBalls()
		s.collidePaddle()
		s.collideBlocks()
	}
	s.updateProjectiles()
	s.updatePowerUps()
	outcome := s.updatePortal()
	s.updateCosmetics()

	if outcome == OutcomeNone {
		outcome = s.checkLifeLoss()
	}
	if outcome == OutcomeNone {
		outcome = s.checkCompletion()
	}
	return s.drain(outcome)
}

func (s *Session) updateBalls() {
	if s.Portal.Active {
		s.orbitBalls()
		return
	}

	for _, b := range s.Balls {
		if !b.Active {
			continue
		}
		if b.Attached {
			b.Follow(s.Paddle)
			if b.CountDown() {
				s.launch(b)
			}
			continue
		}

		b.Update(s.gravity())
		if !b.Active {
			continue
		}
		speed := b.SpeedPerSecond()
		b.RecordTrail(speed, s.cfg.Speed.TrailShort, s.cfg.Speed.TrailLong)
		s.trackSpeed(b, speed)
	}
}

// trackSpeed updates the session record and fires the portal once per level.
func (s *Session) trackSpeed(b *entity.Ball, speed float64) {
	if speed > s.MaxSpeed {
		s.MaxSpeed = speed
		s.MaxSpeedFrame = s.Frame
		if speed >= s.cfg.Speed.RecordBurstMin {
			cx, cy := b.Center()
			s.Particles = append(s.Particles, entity.Burst(s.rng, cx, cy, 2)...)
		}
	}
	if speed >= s.cfg.Speed.PortalThreshold && !s.Portal.Latched {
		s.openPortal()
	}
}

func (s *Session) updateProjectiles() {
	for _, p := range s.Projectiles {
		if !p.Active {
			continue
		}
		p.Update(s.cfg.PowerUps.ProjectileSpeed)
		if !p.Active {
			continue
		}
		for _, blk := range s.Blocks {
			if !blk.Active || !p.Bounds().Intersects(blk.Bounds()) {
				continue
			}
			p.Active = false
			if blk.Destroy() {
				s.blockDestroyed(blk)
			}
			cx, cy := p.Center()
			s.explode(cx, cy, blk)
			break
		}
	}
}

func (s *Session) updatePowerUps() {
	paddle := s.Paddle.Bounds()
	for _, pu := range s.PowerUps {
		if !pu.Active {
			continue
		}
		pu.Update(s.cfg.PowerUps.FallSpeed)
		if !pu.Active || !pu.Bounds().Intersects(paddle) {
			continue
		}
		pu.Active = false
		s.AddScore(s.cfg.Scoring.PowerUp)
		s.applyPowerUp(pu.Kind)
	}
}

func (s *Session) applyPowerUp(kind entity.PowerKind) {
	switch kind {
	case entity.PowerExtraBall:
		s.Balls = append(s.Balls, entity.NewAttachedBall(s.Paddle, s.cfg.Physics.LaunchDelay))
	case entity.PowerLongPaddle:
		s.Paddle.Extend(s.cfg.PowerUps.LongDuration)
	case entity.PowerGhostBall:
		s.Paddle.StartGhost(s.cfg.PowerUps.GhostDuration)
	case entity.PowerRocketAmmo:
		s.Paddle.AddRocket()
	case entity.PowerKindCount:
	}
}

func (s *Session) updateCosmetics() {
	for _, p := range s.Particles {
		p.Update()
	}
	if s.Thief != nil {
		s.Thief.Update()
	}
}

// checkLifeLoss handles the last ball leaving the field.
func (s *Session) checkLifeLoss() Outcome {
	if s.Portal.Active || s.ActiveBalls() > 0 {
		return OutcomeNone
	}

	s.Penalize(s.cfg.Scoring.LifePenalty)
	if s.Lives > 0 {
		s.Lives--
	}
	s.LifeLostThisLevel = true
	s.emit(core.SoundLifeLost)

	s.StolenLife = s.Lives
	s.Thief = entity.NewPenguin(HeartPosition(s.Lives))

	if s.Lives == 0 {
		return OutcomeGameOver
	}
	s.Balls = append(s.Balls, entity.NewAttachedBall(s.Paddle, s.cfg.Physics.LaunchDelay))
	return OutcomeLifeLost
}

// checkCompletion reports a cleared level. Indestructible blocks do not count.
func (s *Session) checkCompletion() Outcome {
	if s.Portal.Active || s.RemainingBlocks() > 0 {
		return OutcomeNone
	}
	return s.completeLevel()
}

func (s *Session) completeLevel() Outcome {
	if !s.LifeLostThisLevel && s.Lives < s.cfg.Gameplay.MaxLives {
		s.Lives++
	}
	return OutcomeLevelComplete
}
