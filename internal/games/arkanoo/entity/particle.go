package entity

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/arkanoo/internal/core"
)

// Particle is a cosmetic shard. It never collides with anything.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Rotation      float64 // degrees
	RotationSpeed float64
	Life          int
	MaxLife       int
	Size          float64
	Color         int // Palette index
}

// Bounds returns the particle's bounding box.
func (p *Particle) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.Size, p.Size)
}

// Alive reports whether the particle still has lifetime left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Fade returns the remaining lifetime as 0..1.
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Update moves the particle under gravity and burns one tick of lifetime.
func (p *Particle) Update() {
	if p.Life <= 0 {
		return
	}
	p.X += p.VX
	p.Y += p.VY
	p.VY += ParticleGravity
	p.Rotation = math.Mod(p.Rotation+p.RotationSpeed+360, 360)
	p.Life--
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func shard(rng *rand.Rand, x, y, vx, vy float64, color int) *Particle {
	life := 20 + rng.IntN(21)
	return &Particle{
		X:             x,
		Y:             y,
		VX:            vx,
		VY:            vy,
		Rotation:      between(rng, 0, 360),
		RotationSpeed: between(rng, -10, 10),
		Life:          life,
		MaxLife:       life,
		Size:          between(rng, 3, 8),
		Color:         color,
	}
}

// Burst scatters 10 to 15 shards from (x, y) with an upward bias.
func Burst(rng *rand.Rand, x, y float64, color int) []*Particle {
	n := 10 + rng.IntN(6)
	out := make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := between(rng, 0, 2*math.Pi)
		speed := between(rng, 2, 6)
		out = append(out, shard(rng, x, y, math.Cos(angle)*speed, math.Sin(angle)*speed-2, color))
	}
	return out
}

// Ring emits n shards evenly spaced around (x, y) at a fixed speed.
func Ring(rng *rand.Rand, x, y float64, n int, speed float64, color int) []*Particle {
	out := make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		out = append(out, shard(rng, x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, color))
	}
	return out
}

// Puff emits a few slow shards, used when the portal swallows a block.
func Puff(rng *rand.Rand, x, y float64, color int) []*Particle {
	out := make([]*Particle, 0, 4)
	for i := 0; i < 4; i++ {
		out = append(out, shard(rng, x, y, between(rng, -1, 1), between(rng, -1.5, 0), color))
	}
	return out
}
