package level

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

// family identifies a procedural layout style.
type family int

const (
	familyScatter family = iota
	familyWave
	familyStripes
	familyRings
	familyChecker
	familyCellular
	familyHoneycomb
	familyMirror
	familyMaze
	familyDiamonds
	familyInvaders
	familyHelix
	familyCount
)

var familyNames = [familyCount]string{
	"Scatter",
	"Waves",
	"Diagonals",
	"Ripples",
	"Offset Checks",
	"Cellular",
	"Honeycomb",
	"Mirror",
	"Maze",
	"Diamonds",
	"Invaders",
	"Double Helix",
}

// invader is the 6x5 sprite tiled by the invaders family.
var invader = [5]string{
	".#..#.",
	"######",
	"#.##.#",
	"######",
	".#..#.",
}

// Chances of a procedural cell becoming a special block, cumulative.
const (
	iceChance            = 0.07
	explosiveChance      = 0.11
	indestructibleChance = 0.14
)

// familyFor returns the family chosen for a level attempt.
func familyFor(level, attempt int) family {
	return family(newRNG(seedFor(level, attempt)).IntN(int(familyCount)))
}

// procedural builds one attempt of a level >= 10.
func procedural(level, attempt int) []entity.Block {
	rng := newRNG(seedFor(level, attempt))
	fam := family(rng.IntN(int(familyCount)))
	include := shape(fam, rng, level, attempt)

	blocks := make([]entity.Block, 0, entity.GridRows*entity.GridCols)
	for row := 0; row < entity.GridRows; row++ {
		for col := 0; col < entity.GridCols; col++ {
			cell := cellRNG(level, row, col, attempt)
			roll := cell.Float64()
			if !include(row, col, roll) {
				continue
			}
			blocks = append(blocks, entity.NewBlock(row, col, colorFor(row), kindFor(cell.Float64()), IceHealth))
		}
	}
	return blocks
}

func kindFor(roll float64) entity.Kind {
	switch {
	case roll < iceChance:
		return entity.KindIce
	case roll < explosiveChance:
		return entity.KindExplosive
	case roll < indestructibleChance:
		return entity.KindIndestructible
	default:
		return entity.KindNormal
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// shape draws the family parameters and returns the inclusion predicate.
// roll is the cell's own uniform draw in [0, 1).
func shape(fam family, rng *rand.Rand, level, attempt int) func(row, col int, roll float64) bool {
	switch fam {
	case familyScatter:
		density := uniform(rng, 0.6, 0.8)
		return func(row, col int, roll float64) bool { return roll < density }

	case familyWave:
		threshold := uniform(rng, -0.3, 0.3)
		freq := uniform(rng, 0.3, 0.8)
		phase := uniform(rng, 0, 2*math.Pi)
		return func(row, col int, roll float64) bool {
			return math.Sin(float64(col)*freq+phase)*2.5+centerRow-float64(row) > threshold*5
		}

	case familyStripes:
		width := 2 + rng.IntN(3)
		return func(row, col int, roll float64) bool { return ((col+row)/width)%2 == 0 }

	case familyRings:
		size := uniform(rng, 1.5, 3.0)
		return func(row, col int, roll float64) bool {
			dist := math.Hypot(float64(col)-9.5, float64(row)-4.5)
			return int(dist/size)%2 == 0
		}

	case familyChecker:
		offset := rng.IntN(3)
		return func(row, col int, roll float64) bool { return (col/2+row+offset*(row%2))%2 == 0 }

	case familyCellular:
		rule := 2 + rng.IntN(4)
		alive := seedGrid(level, attempt, 0.55)
		return func(row, col int, roll float64) bool {
			n := neighbors(alive, row, col)
			if alive[row][col] {
				return n >= rule-1
			}
			return n >= rule+1
		}

	case familyHoneycomb:
		// Staggered holes: each row shifts the gaps by half a cell.
		return func(row, col int, roll float64) bool { return (col+2*(row%2))%4 != 0 }

	case familyMirror:
		return func(row, col int, roll float64) bool {
			src := col
			if col >= entity.GridCols/2 {
				src = entity.GridCols - 1 - col
			}
			return cellRNG(level, row, src, attempt).Float64() < 0.6
		}

	case familyMaze:
		return func(row, col int, roll float64) bool { return (col^row)%3 == 0 || (col&row)%5 == 0 }

	case familyDiamonds:
		const size = 4
		return func(row, col int, roll float64) bool {
			dx := col%(size+1) - size/2
			dy := row%(size+1) - size/2
			return absInt(dx)+absInt(dy) <= size/2
		}

	case familyInvaders:
		return func(row, col int, roll float64) bool {
			x, y := col%7, row%5
			return x < 6 && invader[y][x] == '#'
		}

	case familyHelix:
		phase := uniform(rng, 0, 2*math.Pi)
		return func(row, col int, roll float64) bool {
			s := math.Sin(float64(row)*0.8+phase) * 2.5
			a, b := centerCol+s, centerCol-s
			c := float64(col)
			if math.Abs(c-a) < 0.8 || math.Abs(c-b) < 0.8 {
				return true
			}
			return row%2 == 0 && c > math.Min(a, b) && c < math.Max(a, b)
		}

	default:
		return func(row, col int, roll float64) bool { return true }
	}
}

// seedGrid fills a boolean grid from the per-cell generators.
func seedGrid(level, attempt int, density float64) [entity.GridRows][entity.GridCols]bool {
	var g [entity.GridRows][entity.GridCols]bool
	for row := range g {
		for col := range g[row] {
			g[row][col] = cellRNG(level, row, col, attempt+1).Float64() < density
		}
	}
	return g
}

func neighbors(g [entity.GridRows][entity.GridCols]bool, row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r, c := row+dy, col+dx
			if r >= 0 && r < entity.GridRows && c >= 0 && c < entity.GridCols && g[r][c] {
				n++
			}
		}
	}
	return n
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
