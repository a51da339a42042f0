package entity

import "github.com/vovakirdan/arkanoo/internal/core"

// Kind is the material of a block.
type Kind uint8

const (
	KindNormal Kind = iota
	KindIce
	KindExplosive
	KindIndestructible
)

// String returns the name of the block kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindIce:
		return "ice"
	case KindExplosive:
		return "explosive"
	case KindIndestructible:
		return "indestructible"
	default:
		return "unknown"
	}
}

// HitResult is what a single ball or rocket contact did to a block.
type HitResult uint8

const (
	HitDeflected HitResult = iota // indestructible, nothing changed
	HitDamaged                    // health lost, still standing
	HitDestroyed
)

// Block is a brick placed on the grid.
type Block struct {
	X, Y     float64
	Row, Col int
	Color    int // Palette index
	Kind     Kind
	Active   bool

	Health    int
	MaxHealth int
}

// NewBlock creates an active block at a grid cell. Ice blocks start with
// iceHealth hit points, every other kind with one.
func NewBlock(row, col, color int, kind Kind, iceHealth int) Block {
	health := 1
	if kind == KindIce && iceHealth > 1 {
		health = iceHealth
	}
	return Block{
		X:         GridOffsetX + float64(col)*BlockWidth,
		Y:         GridOffsetY + float64(row)*BlockHeight,
		Row:       row,
		Col:       col,
		Color:     color,
		Kind:      kind,
		Active:    true,
		Health:    health,
		MaxHealth: health,
	}
}

// Bounds returns the block's bounding box.
func (b *Block) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, BlockWidth, BlockHeight)
}

// Center returns the center of the block.
func (b *Block) Center() (float64, float64) {
	return b.X + BlockWidth/2, b.Y + BlockHeight/2
}

// Destructible reports whether hits can ever remove the block.
func (b *Block) Destructible() bool {
	return b.Kind != KindIndestructible
}

// Hit applies one direct contact.
func (b *Block) Hit() HitResult {
	switch b.Kind {
	case KindIndestructible:
		return HitDeflected
	case KindIce:
		b.Health--
		if b.Health > 0 {
			return HitDamaged
		}
		b.Active = false
		return HitDestroyed
	case KindNormal, KindExplosive:
		b.Health = 0
		b.Active = false
		return HitDestroyed
	default:
		return HitDeflected
	}
}

// Destroy removes a destructible block regardless of its health.
func (b *Block) Destroy() bool {
	if !b.Active || !b.Destructible() {
		return false
	}
	b.Health = 0
	b.Active = false
	return true
}

// PullToward moves the block center toward (x, y) by at most step and
// reports whether it has arrived.
func (b *Block) PullToward(x, y, step float64) bool {
	cx, cy := b.Center()
	dist := core.Distance(cx, cy, x, y)
	if dist <= step {
		b.X = x - BlockWidth/2
		b.Y = y - BlockHeight/2
		return true
	}
	b.X += (x - cx) / dist * step
	b.Y += (y - cy) / dist * step
	return false
}
