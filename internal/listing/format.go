package listing

import "strings"

// Formatter pads and truncates fixed-width columns. Widths are counted in
// clusters of PadLength characters.
type Formatter struct {
	PadLength  int
	Truncation string
}

// Width returns the character width of a column spanning clusters.
func (f Formatter) Width(clusters int) int {
	return f.PadLength * clusters
}

// AppendTab pads value to Width(padCount). When the cut point of the padded
// value is not a space the cell is cut short and closed with the truncation
// marker, so a value exactly as wide as the column is still marked. Widths
// count runes. A padCount below 1 returns value unchanged.
func (f Formatter) AppendTab(value string, padCount int) string {
	if padCount < 1 {
		return value
	}
	width := f.Width(padCount)
	result := []rune(value + strings.Repeat(" ", width))
	if len(result) <= width {
		return string(result)
	}
	marker := []rune(f.Truncation)
	if result[width-1] != ' ' && len(marker) < width {
		return string(result[:width-len(marker)]) + f.Truncation
	}
	return string(result[:width])
}

// BreakLine returns a border of '=' spanning clusters.
func (f Formatter) BreakLine(clusters int) string {
	return strings.Repeat("=", f.Width(clusters))
}
