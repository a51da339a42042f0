package sim

import (
	"math"

	"github.com/vovakirdan/arkanoo/internal/core"
	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

// Particle ring emitted where two balls touch.
const (
	contactRingSize  = 12
	contactRingSpeed = 3.0
	contactColor     = 4
)

func inFlight(b *entity.Ball) bool {
	return b.Active && !b.Attached
}

// collideBalls pushes touching balls upward and apart. Only one Bounce cue
// is emitted per tick however many pairs touch.
func (s *Session) collideBalls() {
	dist := s.cfg.Physics.BallBallDistance
	up := s.cfg.Physics.BallBallUpSpeed

	for i := 0; i < len(s.Balls); i++ {
		a := s.Balls[i]
		if !inFlight(a) {
			continue
		}
		for j := i + 1; j < len(s.Balls); j++ {
			b := s.Balls[j]
			if !inFlight(b) {
				continue
			}
			ax, ay := a.Center()
			bx, by := b.Center()
			d := core.Distance(ax, ay, bx, by)
			if d >= dist {
				continue
			}

			a.VY = -math.Max(math.Abs(a.VY), up)
			b.VY = -math.Max(math.Abs(b.VY), up)

			// The ball left of the contact point goes left.
			left, right := a, b
			if ax > bx {
				left, right = b, a
			}
			left.VX = -math.Max(math.Abs(left.VX), entity.MinHorizontalSpeed)
			right.VX = math.Max(math.Abs(right.VX), entity.MinHorizontalSpeed)
			sep := (dist - d) / 2
			left.X = core.ClampF(left.X-sep, 0, entity.FieldWidth-entity.BallSize)
			right.X = core.ClampF(right.X+sep, 0, entity.FieldWidth-entity.BallSize)

			mx, my := (ax+bx)/2, (ay+by)/2
			s.Particles = append(s.Particles, entity.Ring(s.rng, mx, my, contactRingSize, contactRingSpeed, contactColor)...)
			s.emit(core.SoundBounce)
		}
	}
}

// collidePaddle reflects falling balls off the paddle. The hit offset aims
// the ball; a moving paddle also discharges spin into it.
func (s *Session) collidePaddle() {
	p := s.Paddle
	phys := s.cfg.Physics
	bounds := p.Bounds()
	px, _ := p.Center()

	for _, b := range s.Balls {
		if !inFlight(b) || b.VY <= 0 || !b.Bounds().Intersects(bounds) {
			continue
		}

		bx, _ := b.Center()
		offset := bx - px

		b.Y = p.Y - entity.BallSize
		b.VY = -math.Max(math.Abs(b.VY), phys.MinBounceSpeed)
		b.VX += offset * phys.PaddleAim
		if math.Abs(p.VelX) >= phys.MinSpinPaddleSpeed {
			b.Spin = p.VelX*phys.SpinTransfer + offset*phys.OffsetSpin
			p.Discharge()
		} else {
			b.Spin = offset * phys.OffsetSpin
		}
		b.EnforceMinHorizontal()

		s.AddScore(s.cfg.Scoring.PaddleHit)
		s.emit(core.SoundBounce)
	}
}

func (s *Session) collideBlocks() {
	ghost := s.Paddle.Ghost()
	for _, b := range s.Balls {
		if inFlight(b) {
			s.collideBallBlocks(b, ghost)
		}
	}
}

// collideBallBlocks resolves one ball against the grid. A ghost ball breaks
// every block it overlaps and keeps its course; a normal ball reflects off
// the first block it overlaps and stops there for this tick.
func (s *Session) collideBallBlocks(b *entity.Ball, ghost bool) {
	for _, blk := range s.Blocks {
		if !blk.Active {
			continue
		}
		overlap, ok := b.Bounds().Overlap(blk.Bounds())
		if !ok {
			continue
		}
		if ghost {
			if blk.Destructible() {
				s.hitBlock(blk)
			}
			continue
		}

		reflect(b, blk, overlap)
		s.hitBlock(blk)
		return
	}
}

// reflect flips the velocity on the axis where the overlap is thinnest and
// pushes the ball out by that much.
func reflect(b *entity.Ball, blk *entity.Block, overlap core.Box) {
	bx, by := b.Center()
	kx, ky := blk.Center()

	if overlap.W < overlap.H {
		b.VX = -b.VX
		if bx < kx {
			b.X -= overlap.W
		} else {
			b.X += overlap.W
		}
		return
	}

	b.VY = -b.VY
	if by < ky {
		b.Y -= overlap.H
	} else {
		b.Y += overlap.H
	}
}
