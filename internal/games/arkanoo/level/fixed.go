package level

import (
	"math"

	"github.com/vovakirdan/arkanoo/internal/games/arkanoo/entity"
)

var fixedNames = [FixedLevels]string{
	"Wall",
	"Checkerboard",
	"Stripes",
	"Columns",
	"Pyramid",
	"Diamond",
	"Spiral",
	"Rings",
	"Perforated",
}

// Grid center used by the radial layouts.
const (
	centerCol = 10.0
	centerRow = 5.0
)

// fixed returns the hand-authored layout for levels 1..9.
func fixed(n int) []entity.Block {
	switch n {
	case 1:
		return grid(func(row, col int) bool { return true })
	case 2:
		return grid(func(row, col int) bool { return (row+col)%2 == 0 })
	case 3:
		return grid(func(row, col int) bool { return row%2 == 0 })
	case 4:
		return grid(func(row, col int) bool {
			return col%2 == 0 || row == 0 || row == entity.GridRows-1
		})
	case 5:
		return grid(func(row, col int) bool {
			return math.Abs(float64(col)-centerCol) <= float64(row)
		})
	case 6:
		return grid(func(row, col int) bool {
			return math.Abs(float64(col)-centerCol)+math.Abs(float64(row)-centerRow) <= 7
		})
	case 7:
		return grid(func(row, col int) bool {
			dx, dy := float64(col)-centerCol, float64(row)-centerRow
			return math.Sin(math.Atan2(dy, dx)*2+math.Hypot(dx, dy)*0.5) > 0
		})
	case 8:
		return grid(func(row, col int) bool {
			dist := math.Hypot(float64(col)-centerCol, float64(row)-centerRow)
			return int(dist)%3 != 1
		})
	case 9:
		return grid(func(row, col int) bool {
			return !(col%4 == 1 && row%4 == 1) &&
				!(col%4 == 2 && row%4 == 2) &&
				(col+row)%7 != 0
		})
	default:
		return grid(func(row, col int) bool { return true })
	}
}
