package core

// Color represents a foreground color for a screen cell.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorYellow
	ColorWhite
	ColorGray
)

// String returns the lowercase color name, as used in config files.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// ParseColor maps a config color name to a Color.
// Unknown names map to ColorDefault and ok=false.
func ParseColor(name string) (c Color, ok bool) {
	switch name {
	case "red":
		return ColorRed, true
	case "blue":
		return ColorBlue, true
	case "yellow":
		return ColorYellow, true
	case "white":
		return ColorWhite, true
	case "gray", "grey":
		return ColorGray, true
	case "default", "":
		return ColorDefault, true
	default:
		return ColorDefault, false
	}
}
