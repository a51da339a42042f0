package arkanoo

import "math"

// BallView is the read-only state of one ball.
type BallView struct {
	X, Y     float64
	VX, VY   float64
	Speed    float64 // px/s, drives trail and record effects
	Attached bool
}

// Snapshot is a read-only view of a game for renderers, replays and
// determinism checks. Block state is flattened to primitive ints.
type Snapshot struct {
	Frame       uint64
	Mode        string
	Score       uint32
	Lives       int
	Level       int
	PaddleX     float64
	PaddleWidth float64
	RocketAmmo  int
	Gravity     bool

	Balls []BallView

	// Each block is 3 ints: Kind, Health, Active
	BlockData       []int
	BlocksRemaining int

	PowerUps    int
	Projectiles int
	Particles   int

	PortalStage   string
	MaxSpeed      float64
	MaxSpeedFrame uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session

	balls := make([]BallView, 0, len(s.Balls))
	for _, b := range s.Balls {
		if !b.Active {
			continue
		}
		balls = append(balls, BallView{
			X:        b.X,
			Y:        b.Y,
			VX:       b.VX,
			VY:       b.VY,
			Speed:    b.SpeedPerSecond(),
			Attached: b.Attached,
		})
	}

	blockData := make([]int, 0, len(s.Blocks)*3)
	for _, b := range s.Blocks {
		active := 0
		if b.Active {
			active = 1
		}
		blockData = append(blockData, int(b.Kind), b.Health, active)
	}

	return Snapshot{
		Frame:       s.Frame,
		Mode:        g.mode.String(),
		Score:       s.Score,
		Lives:       s.Lives,
		Level:       s.Level,
		PaddleX:     s.Paddle.X,
		PaddleWidth: s.Paddle.Width,
		RocketAmmo:  s.Paddle.RocketAmmo,
		Gravity:     s.GravityMode,

		Balls: balls,

		BlockData:       blockData,
		BlocksRemaining: s.RemainingBlocks(),

		PowerUps:    len(s.PowerUps),
		Projectiles: len(s.Projectiles),
		Particles:   len(s.Particles),

		PortalStage:   s.PortalStage().String(),
		MaxSpeed:      s.MaxSpeed,
		MaxSpeedFrame: s.MaxSpeedFrame,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleWidth)
	h = h*31 + uint64(snap.RocketAmmo)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUps)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Projectiles)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.MaxSpeed)
	h = h*31 + snap.MaxSpeedFrame

	for _, c := range snap.Mode + snap.PortalStage {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
		if b.Attached {
			h = h*31 + 1
		}
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
