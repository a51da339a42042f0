package entity

import "github.com/vovakirdan/arkanoo/internal/core"

// PenguinState is the phase of the heart-theft animation.
type PenguinState uint8

const (
	PenguinWalkingIn PenguinState = iota
	PenguinGrabbing
	PenguinRunningAway
	PenguinDone
)

const (
	penguinSize      = 40.0
	penguinFlySpeed  = 5.5
	penguinReach     = 5.0
	penguinGrabTicks = 30
	penguinRunX      = 7.0
	penguinRunY      = 5.0
	penguinOffscreen = 100.0
)

// Penguin steals the heart of a lost life: it flies to the heart, holds it
// for a moment, then runs off the bottom-right corner.
type Penguin struct {
	X, Y    float64
	TargetX float64
	TargetY float64
	State   PenguinState
	Timer   int
}

// NewPenguin starts a theft aimed at the heart drawn at (heartX, heartY).
func NewPenguin(heartX, heartY float64) *Penguin {
	return &Penguin{
		X:       FieldWidth - 50,
		Y:       FieldHeight - 100,
		TargetX: heartX,
		TargetY: heartY,
		State:   PenguinWalkingIn,
	}
}

// Bounds returns the penguin's bounding box.
func (p *Penguin) Bounds() core.Box {
	return core.NewBox(p.X-penguinSize/2, p.Y-penguinSize/2, penguinSize, penguinSize)
}

// Done reports whether the animation has finished.
func (p *Penguin) Done() bool {
	return p.State == PenguinDone
}

// HoldingHeart reports whether the stolen heart travels with the penguin.
func (p *Penguin) HoldingHeart() bool {
	return p.State == PenguinGrabbing || p.State == PenguinRunningAway
}

// Update advances the animation by one tick.
func (p *Penguin) Update() {
	switch p.State {
	case PenguinWalkingIn:
		dx, dy := p.TargetX-p.X, p.TargetY-p.Y
		dist := core.Distance(p.X, p.Y, p.TargetX, p.TargetY)
		if dist <= penguinReach {
			p.X, p.Y = p.TargetX, p.TargetY
			p.State = PenguinGrabbing
			p.Timer = penguinGrabTicks
			return
		}
		step := penguinFlySpeed
		if step > dist {
			step = dist
		}
		p.X += dx / dist * step
		p.Y += dy / dist * step
	case PenguinGrabbing:
		p.Timer--
		if p.Timer <= 0 {
			p.State = PenguinRunningAway
		}
	case PenguinRunningAway:
		p.X += penguinRunX
		p.Y += penguinRunY
		if p.X > FieldWidth+penguinOffscreen || p.Y > FieldHeight+penguinOffscreen {
			p.State = PenguinDone
		}
	case PenguinDone:
	}
}
