package core

// Color is a foreground color for a screen cell, mapped to an ANSI
// 256-color code by the terminal driver.
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
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// TierColors cycles brick rows from the top of the field downward.
var TierColors = []Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
	ColorBrightRed,
}

// TierColor returns the color for a brick row.
func TierColor(row int) Color {
	if row < 0 {
		return ColorDefault
	}
	return TierColors[row%len(TierColors)]
}
