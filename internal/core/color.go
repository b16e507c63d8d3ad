package core

// Color represents a foreground color for a screen cell or text.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB returns an approximate 24-bit value for raster drivers.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack:
		return 0, 0, 0
	case ColorRed:
		return 205, 49, 49
	case ColorGreen:
		return 13, 188, 121
	case ColorYellow:
		return 229, 229, 16
	case ColorBlue:
		return 36, 114, 200
	case ColorCyan:
		return 17, 168, 205
	case ColorWhite:
		return 229, 229, 229
	case ColorBrightBlue:
		return 59, 142, 234
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 135, 0
	case ColorGray:
		return 138, 138, 138
	default:
		return 0, 0, 0
	}
}
