package core

// Color is the foreground color of a screen cell. The platform maps it to a
// terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette is the six-color rainbow used for block rows, indexed by color index.
var Palette = [6]Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorMagenta,
}

// PaletteColor returns the palette entry for an index, wrapping around.
func PaletteColor(index int) Color {
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}
