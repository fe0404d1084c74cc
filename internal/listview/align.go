package listview

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Measure returns the display width of a string, counting wide (CJK) and
// emoji runes as two cells
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces up to width display cells
func PadRight(s string, width int) string {
	w := Measure(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Truncate cuts s to at most width display cells
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String()
}

// Fit truncates and pads s to exactly width display cells
func Fit(s string, width int) string {
	return PadRight(Truncate(s, width), width)
}
