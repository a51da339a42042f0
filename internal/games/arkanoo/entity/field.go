// Package entity defines the moving and static objects of the playfield.
// Entities only mutate themselves; collisions between them are resolved by
// the sim package.
package entity

// Playfield geometry in pixels. Rendering scales this to the terminal.
const (
	FieldWidth  = 1280.0
	FieldHeight = 720.0

	TicksPerSecond = 60
)

// Ball constants.
const (
	BallSize           = 12.0
	MinHorizontalSpeed = 2.0
	SpinCurve          = 0.05 // vx gained per unit of spin each tick
	SpinDecay          = 0.98
	TrailShortLen      = 8
	TrailLongLen       = 20
)

// Paddle constants.
const (
	PaddleWidth        = 140.0
	LongPaddleWidth    = PaddleWidth + 40
	PaddleHeight       = 22.0
	PaddleY            = FieldHeight - 50
	SpinIntensityDecay = 0.9
)

// Block grid constants.
const (
	BlockWidth  = 60.0
	BlockHeight = 20.0
	GridRows    = 10
	GridCols    = 20
	GridOffsetY = 80.0
	GridOffsetX = (FieldWidth - GridCols*BlockWidth) / 2
)

// Sizes of falling and flying objects.
const (
	PowerUpSize      = 40.0
	ProjectileWidth  = 10.0
	ProjectileHeight = 20.0
	ParticleGravity  = 0.3
)

// Point is a position on the playfield.
type Point struct {
	X, Y float64
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
