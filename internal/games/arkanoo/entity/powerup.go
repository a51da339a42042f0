package entity

import "github.com/vovakirdan/arkanoo/internal/core"

// PowerKind is the effect a falling power-up grants.
type PowerKind uint8

const (
	PowerExtraBall PowerKind = iota
	PowerLongPaddle
	PowerGhostBall
	PowerRocketAmmo
	PowerKindCount // Sentinel for counting kinds
)

// Glyph returns the display character for a power-up kind.
func (k PowerKind) Glyph() rune {
	switch k {
	case PowerExtraBall:
		return 'B'
	case PowerLongPaddle:
		return 'L'
	case PowerGhostBall:
		return 'G'
	case PowerRocketAmmo:
		return 'R'
	default:
		return '?'
	}
}

// String returns the name of the power-up kind.
func (k PowerKind) String() string {
	switch k {
	case PowerExtraBall:
		return "ExtraBall"
	case PowerLongPaddle:
		return "LongPaddle"
	case PowerGhostBall:
		return "GhostBall"
	case PowerRocketAmmo:
		return "RocketAmmo"
	default:
		return "?"
	}
}

// PowerUp is a capsule falling from a destroyed block.
type PowerUp struct {
	X, Y   float64
	Kind   PowerKind
	Active bool
}

// NewPowerUp creates a power-up centered on (cx, cy).
func NewPowerUp(cx, cy float64, kind PowerKind) *PowerUp {
	return &PowerUp{
		X:      cx - PowerUpSize/2,
		Y:      cy - PowerUpSize/2,
		Kind:   kind,
		Active: true,
	}
}

// Bounds returns the power-up's bounding box.
func (p *PowerUp) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, PowerUpSize, PowerUpSize)
}

// Update moves the power-up down and drops it once it leaves the field.
func (p *PowerUp) Update(fallSpeed float64) {
	if !p.Active {
		return
	}
	p.Y += fallSpeed
	if p.Y > FieldHeight {
		p.Active = false
	}
}

// Projectile is a rocket fired upward from the paddle.
type Projectile struct {
	X, Y   float64
	Active bool
}

// NewProjectile creates a rocket centered horizontally on x, with its tail at y.
func NewProjectile(x, y float64) *Projectile {
	return &Projectile{
		X:      x - ProjectileWidth/2,
		Y:      y - ProjectileHeight,
		Active: true,
	}
}

// Bounds returns the rocket's bounding box.
func (p *Projectile) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, ProjectileWidth, ProjectileHeight)
}

// Center returns the center of the rocket.
func (p *Projectile) Center() (float64, float64) {
	return p.X + ProjectileWidth/2, p.Y + ProjectileHeight/2
}

// Update moves the rocket up and drops it past the top edge.
func (p *Projectile) Update(speed float64) {
	if !p.Active {
		return
	}
	p.Y -= speed
	if p.Y+ProjectileHeight < 0 {
		p.Active = false
	}
}
