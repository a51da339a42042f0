// Package level builds block layouts: nine hand-made levels, an endless
// supply of seeded procedural ones, and layouts loaded from pattern files.
package level

import (
	"math/rand/v2"

	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

const (
	// FixedLevels is the number of hand-authored layouts.
	FixedLevels = 9

	// MinBlocks is the smallest procedural layout accepted before retrying.
	MinBlocks = 20

	// MaxRetries bounds procedural attempts; the last attempt is kept.
	MaxRetries = 10

	// IceHealth is the hit points given to generated ice blocks.
	IceHealth = 2

	paletteColors = 6
)

// Generate returns the block layout for a level number. The result depends
// only on n: levels 1..9 are fixed, 10 and up are seeded by the level number.
// Numbers below 1 are treated as level 1.
func Generate(n int) []entity.Block {
	if n < 1 {
		n = 1
	}
	if n <= FixedLevels {
		return fixed(n)
	}

	var blocks []entity.Block
	for attempt := 0; attempt < MaxRetries; attempt++ {
		blocks = procedural(n, attempt)
		if len(blocks) >= MinBlocks {
			return blocks
		}
	}
	return blocks
}

// Name returns a display name for a level.
func Name(n int) string {
	if n >= 1 && n <= FixedLevels {
		return fixedNames[n-1]
	}
	if n < 1 {
		return fixedNames[0]
	}
	return familyNames[familyFor(n, attemptFor(n))]
}

// attemptFor replays the retry loop to find which attempt Generate keeps.
func attemptFor(n int) int {
	for attempt := 0; attempt < MaxRetries; attempt++ {
		if len(procedural(n, attempt)) >= MinBlocks {
			return attempt
		}
	}
	return MaxRetries - 1
}

// seedFor mixes the level number and attempt into a generator seed.
func seedFor(level, attempt int) uint64 {
	s := level*54321 + (level%7)*11111 + (level/5)*99999 + attempt*77777
	return uint64(s) //#nosec G115 -- level and attempt are positive
}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// cellRNG returns the generator for one grid cell of one attempt.
func cellRNG(level, row, col, attempt int) *rand.Rand {
	return newRNG(uint64(level*1000 + row*100 + col + attempt)) //#nosec G115 -- all terms are positive
}

// colorFor is the rainbow row coloring shared by every layout.
func colorFor(row int) int {
	return row % paletteColors
}

// grid collects blocks row by row.
func grid(include func(row, col int) bool) []entity.Block {
	blocks := make([]entity.Block, 0, entity.GridRows*entity.GridCols)
	for row := 0; row < entity.GridRows; row++ {
		for col := 0; col < entity.GridCols; col++ {
			if include(row, col) {
				blocks = append(blocks, entity.NewBlock(row, col, colorFor(row), entity.KindNormal, IceHealth))
			}
		}
	}
	return blocks
}
