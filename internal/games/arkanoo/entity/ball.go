package entity

import (
	"math"

	"github.com/vovakirdan/arkanoo/internal/core"
)

// Ball is a square ball. While Attached it rides on the paddle and counts
// down LaunchTimer before leaving on its own.
type Ball struct {
	X, Y   float64 // Top-left corner
	VX, VY float64 // px/tick
	Spin   float64

	Active      bool
	Attached    bool
	LaunchTimer int

	Trail []Point
}

// NewAttachedBall creates a ball resting on the paddle.
func NewAttachedBall(p *Paddle, launchDelay int) *Ball {
	b := &Ball{
		Active:      true,
		Attached:    true,
		LaunchTimer: launchDelay,
	}
	b.Follow(p)
	return b
}

// NewFreeBall creates a ball in flight.
func NewFreeBall(x, y, vx, vy float64) *Ball {
	return &Ball{X: x, Y: y, VX: vx, VY: vy, Active: true}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, BallSize, BallSize)
}

// Center returns the center of the ball.
func (b *Ball) Center() (float64, float64) {
	return b.X + BallSize/2, b.Y + BallSize/2
}

// Speed returns the velocity magnitude in px/tick.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// SpeedPerSecond returns the velocity magnitude in px/s.
func (b *Ball) SpeedPerSecond() float64 {
	return b.Speed() * TicksPerSecond
}

// Follow pins an attached ball just above the paddle center.
func (b *Ball) Follow(p *Paddle) {
	cx, _ := p.Center()
	b.X = cx - BallSize/2
	b.Y = p.Y - BallSize - 1
}

// CountDown advances the launch timer and reports whether it has run out.
func (b *Ball) CountDown() bool {
	if !b.Attached {
		return false
	}
	if b.LaunchTimer > 0 {
		b.LaunchTimer--
	}
	return b.LaunchTimer == 0
}

// Launch detaches the ball with the given velocity.
func (b *Ball) Launch(vx, vy float64) {
	b.Attached = false
	b.LaunchTimer = 0
	b.VX = vx
	b.VY = vy
}

// Update integrates a free ball for one tick: spin curve, optional gravity,
// wall reflection and the bottom exit. Attached balls are left alone.
func (b *Ball) Update(gravity float64) {
	if !b.Active || b.Attached {
		return
	}

	b.VX += b.Spin * SpinCurve
	b.Spin *= SpinDecay
	b.VY += gravity

	b.X += b.VX
	b.Y += b.VY

	if b.X <= 0 {
		b.X = 0
		b.VX = abs(b.VX)
	}
	if b.X+BallSize >= FieldWidth {
		b.X = FieldWidth - BallSize
		b.VX = -abs(b.VX)
	}
	if b.Y <= 0 {
		b.Y = 0
		b.VY = abs(b.VY)
	}
	if b.Y >= FieldHeight {
		b.Active = false
		return
	}

	b.EnforceMinHorizontal()
}

// EnforceMinHorizontal keeps the ball from settling into a vertical loop.
func (b *Ball) EnforceMinHorizontal() {
	if abs(b.VX) >= MinHorizontalSpeed {
		return
	}
	if b.VX < 0 {
		b.VX = -MinHorizontalSpeed
	} else {
		b.VX = MinHorizontalSpeed
	}
}

// RecordTrail appends the current center to the trail when the ball is fast
// enough. The trail length depends on the speed tier; slow balls drop it.
func (b *Ball) RecordTrail(pxPerSec, shortAt, longAt float64) {
	limit := 0
	switch {
	case pxPerSec >= longAt:
		limit = TrailLongLen
	case pxPerSec >= shortAt:
		limit = TrailShortLen
	}
	if limit == 0 {
		b.Trail = b.Trail[:0]
		return
	}

	cx, cy := b.Center()
	b.Trail = append(b.Trail, Point{X: cx, Y: cy})
	if over := len(b.Trail) - limit; over > 0 {
		b.Trail = append(b.Trail[:0], b.Trail[over:]...)
	}
}
