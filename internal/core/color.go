package core

// Color represents a foreground color for a screen cell.
// Rendered as ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. The first eight follow the classic digit palette
// for adjacency counts 1 through 8.
const (
	ColorDefault Color = iota
	ColorBlue          // 1
	ColorGreen         // 2
	ColorRed           // 3
	ColorNavy          // 4
	ColorMaroon        // 5
	ColorCyan          // 6
	ColorMagenta       // 7
	ColorGray          // 8, also hidden cells
	ColorYellow
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
)

// NumberColor returns the classic digit color for an adjacency count.
// Counts outside 1..8 get the default color.
func NumberColor(n int) Color {
	if n < 1 || n > 8 {
		return ColorDefault
	}
	return ColorBlue + Color(n-1)
}
