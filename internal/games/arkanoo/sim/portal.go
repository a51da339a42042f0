package sim

import (
	"math"

	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

// PortalStage is the visible phase of the portal sequence.
type PortalStage uint8

const (
	PortalClosed PortalStage = iota
	PortalPulling
	PortalOpen
	PortalCollapse
	PortalFlash
	PortalFade
)

// String returns the stage name.
func (p PortalStage) String() string {
	switch p {
	case PortalClosed:
		return "closed"
	case PortalPulling:
		return "pulling"
	case PortalOpen:
		return "open"
	case PortalCollapse:
		return "collapse"
	case PortalFlash:
		return "flash"
	case PortalFade:
		return "fade"
	default:
		return "unknown"
	}
}

// PortalStage reports where the portal sequence is.
func (s *Session) PortalStage() PortalStage {
	p := s.cfg.Portal
	switch {
	case !s.Portal.Active:
		return PortalClosed
	case s.Portal.Timer == 0:
		return PortalPulling
	case s.Portal.Timer <= p.HoldEnd:
		return PortalOpen
	case s.Portal.Timer <= p.CollapseEnd:
		return PortalCollapse
	case s.Portal.Timer <= p.FlashEnd:
		return PortalFlash
	default:
		return PortalFade
	}
}

func (s *Session) openPortal() {
	s.Portal.Active = true
	s.Portal.Latched = true
	s.Portal.Timer = 0
	s.Portal.Angle = 0
	s.AddScore(s.cfg.Scoring.PortalBonus)
	for _, b := range s.Balls {
		b.Attached = false
		b.Trail = b.Trail[:0]
	}
}

// orbitBalls circles every ball around the field center, evenly spread.
func (s *Session) orbitBalls() {
	p := s.cfg.Portal
	s.Portal.Angle += p.OrbitRate

	cx, cy := entity.FieldWidth/2, entity.FieldHeight/2
	n := len(s.Balls)
	for i, b := range s.Balls {
		if !b.Active {
			continue
		}
		a := s.Portal.Angle + 2*math.Pi*float64(i)/float64(n)
		x := cx + math.Cos(a)*p.OrbitRadius - entity.BallSize/2
		y := cy + math.Sin(a)*p.OrbitRadius - entity.BallSize/2
		b.VX, b.VY = x-b.X, y-b.Y
		b.X, b.Y = x, y
	}
}

// updatePortal pulls the remaining blocks in, then runs the closing timer.
func (s *Session) updatePortal() Outcome {
	if !s.Portal.Active {
		return OutcomeNone
	}

	cx, cy := entity.FieldWidth/2, entity.FieldHeight/2
	remaining := 0
	for _, blk := range s.Blocks {
		if !blk.Active {
			continue
		}
		if blk.PullToward(cx, cy, s.cfg.Portal.PullSpeed) {
			blk.Active = false
			s.Particles = append(s.Particles, entity.Puff(s.rng, cx, cy, blk.Color)...)
			continue
		}
		remaining++
	}
	if remaining > 0 {
		return OutcomeNone
	}

	s.Portal.Timer++
	if s.Portal.Timer < s.cfg.Portal.FadeEnd {
		return OutcomeNone
	}
	s.Portal.Active = false
	for _, b := range s.Balls {
		b.Active = false
	}
	return s.completeLevel()
}
