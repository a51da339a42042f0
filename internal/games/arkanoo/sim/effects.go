package sim

import (
	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

const (
	blastRingSize  = 16
	blastRingSpeed = 5.0
	blastColor     = 1
)

// hitBlock applies one direct contact and its consequences.
func (s *Session) hitBlock(blk *entity.Block) {
	switch blk.Hit() {
	case entity.HitDeflected:
		s.emit(core.SoundBounce)
	case entity.HitDamaged:
		s.emit(core.SoundGlassBreak)
	case entity.HitDestroyed:
		s.blockDestroyed(blk)
		if blk.Kind == entity.KindExplosive {
			cx, cy := blk.Center()
			s.explode(cx, cy, blk)
		}
	}
}

// blockDestroyed scores a block that just went inactive.
func (s *Session) blockDestroyed(blk *entity.Block) {
	s.AddScore(s.cfg.Scoring.Block)
	cx, cy := blk.Center()
	s.Particles = append(s.Particles, entity.Burst(s.rng, cx, cy, blk.Color)...)
	s.emit(core.SoundGlassBreak)
	s.maybeDrop(cx, cy)
}

// explode destroys every other destructible block whose center lies within
// the blast radius of (x, y). Explosive blocks caught in a blast do not
// chain further.
func (s *Session) explode(x, y float64, origin *entity.Block) {
	radius := s.cfg.Gameplay.ExplosionRadius
	for _, blk := range s.Blocks {
		if blk == origin || !blk.Active {
			continue
		}
		cx, cy := blk.Center()
		if core.Distance(x, y, cx, cy) > radius {
			continue
		}
		if blk.Destroy() {
			s.blockDestroyed(blk)
		}
	}
	s.Particles = append(s.Particles, entity.Ring(s.rng, x, y, blastRingSize, blastRingSpeed, blastColor)...)
	s.emit(core.SoundExplosion)
}

// maybeDrop spawns a power-up at (x, y) unless the drop cooldown is running.
func (s *Session) maybeDrop(x, y float64) {
	if s.BonusCooldown > 0 {
		return
	}
	chance := s.difficulty.DropChance(s.cfg.PowerUps.DropChance, int(s.Score), s.Level)
	if s.rng.Float64() >= chance {
		return
	}
	s.PowerUps = append(s.PowerUps, entity.NewPowerUp(x, y, s.rollPowerUp()))
	s.BonusCooldown = s.cfg.PowerUps.Cooldown
}

// rollPowerUp picks a kind using the configured weights.
func (s *Session) rollPowerUp() entity.PowerKind {
	w := s.cfg.PowerUps.Weights
	weights := [entity.PowerKindCount]int{
		entity.PowerExtraBall:  w.ExtraBall,
		entity.PowerLongPaddle: w.LongPaddle,
		entity.PowerGhostBall:  w.GhostBall,
		entity.PowerRocketAmmo: w.RocketAmmo,
	}

	total := 0
	for _, v := range weights {
		total += max(v, 0)
	}
	if total == 0 {
		return entity.PowerExtraBall
	}

	roll := s.rng.IntN(total)
	for kind, v := range weights {
		v = max(v, 0)
		if roll < v {
			return entity.PowerKind(kind) //#nosec G115 -- index below PowerKindCount
		}
		roll -= v
	}
	return entity.PowerExtraBall
}
