package entity

import "github.com/vovakirdan/arkanoo/internal/core"

// Paddle is the player-controlled bar at the bottom of the field.
type Paddle struct {
	X, Y  float64
	Width float64

	LastX float64
	VelX  float64 // px moved during the last tick

	// SpinIntensity is set to 1 when the paddle discharges spin into a ball
	// and decays back to zero. Rendering uses it for a glow.
	SpinIntensity float64

	LongTimer  int
	GhostTimer int
	RocketAmmo int
}

// NewPaddle creates a normal-width paddle centered on the field.
func NewPaddle() *Paddle {
	x := (FieldWidth - PaddleWidth) / 2
	return &Paddle{
		X:     x,
		Y:     PaddleY,
		Width: PaddleWidth,
		LastX: x,
	}
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, PaddleHeight)
}

// Center returns the center of the paddle.
func (p *Paddle) Center() (float64, float64) {
	return p.X + p.Width/2, p.Y + PaddleHeight/2
}

// MoveTo places the left edge at x, clamped to the field.
func (p *Paddle) MoveTo(x float64) {
	p.X = core.ClampF(x, 0, FieldWidth-p.Width)
}

// MoveCenterTo places the paddle center at x, clamped to the field.
func (p *Paddle) MoveCenterTo(x float64) {
	p.MoveTo(x - p.Width/2)
}

// Nudge moves the paddle by dx, clamped to the field.
func (p *Paddle) Nudge(dx float64) {
	p.MoveTo(p.X + dx)
}

// Update derives the per-tick velocity and runs the effect timers.
func (p *Paddle) Update() {
	p.VelX = p.X - p.LastX
	p.LastX = p.X

	p.SpinIntensity *= SpinIntensityDecay
	if p.SpinIntensity < 0.01 {
		p.SpinIntensity = 0
	}

	if p.LongTimer > 0 {
		p.LongTimer--
		if p.LongTimer == 0 {
			p.resize(PaddleWidth)
		}
	}
	if p.GhostTimer > 0 {
		p.GhostTimer--
	}
}

// Extend widens the paddle for the given number of ticks. Repeat pickups
// restart the timer.
func (p *Paddle) Extend(duration int) {
	p.resize(LongPaddleWidth)
	p.LongTimer = duration
}

// StartGhost enables ghost balls for the given number of ticks.
func (p *Paddle) StartGhost(duration int) {
	p.GhostTimer = duration
}

// Ghost reports whether balls currently pass through blocks.
func (p *Paddle) Ghost() bool {
	return p.GhostTimer > 0
}

// AddRocket grants one rocket.
func (p *Paddle) AddRocket() {
	p.RocketAmmo++
}

// TakeRocket consumes one rocket if any are left.
func (p *Paddle) TakeRocket() bool {
	if p.RocketAmmo <= 0 {
		return false
	}
	p.RocketAmmo--
	return true
}

// Discharge marks a full spin transfer to a ball.
func (p *Paddle) Discharge() {
	p.SpinIntensity = 1
}

func (p *Paddle) resize(width float64) {
	cx := p.X + p.Width/2
	p.Width = width
	p.MoveCenterTo(cx)
	p.LastX = p.X
}
