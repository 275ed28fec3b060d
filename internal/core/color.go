package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
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

// digitColors assigns a stable color per digit so matching groups read as
// same-colored clusters on the board.
var digitColors = [10]Color{
	ColorGray,
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorBrightRed,
	ColorBrightGreen,
	ColorOrange,
}

// DigitColor returns the display color for a digit value 0-9.
// Out-of-range values map to the default color.
func DigitColor(digit int) Color {
	if digit < 0 || digit >= len(digitColors) {
		return ColorDefault
	}
	return digitColors[digit]
}
