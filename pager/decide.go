package pager

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type Preference uint8

const (
	// page only when the output doesn't fit the terminal
	Auto Preference = iota
	Always
	Never
)

func (p Preference) String() string {
	switch p {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

func ParsePreference(value string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return Auto, nil
	case "always", "on":
		return Always, nil
	case "never", "off":
		return Never, nil
	default:
		return Auto, fmt.Errorf("invalid pager preference %q, valid values are: 'auto', 'always' or 'never'", value)
	}
}

type Geometry struct {
	Rows    int
	Columns int
}

// Rows held back for the prompt and the status lines.
const ReservedRows = 3

// UsableRows is how many lines of output fit on screen. It's never less than
// 1, however small (or unknown) the terminal is.
func UsableRows(g Geometry) int {
	if rows := g.Rows - ReservedRows; rows > 1 {
		return rows
	}
	return 1
}

func ShouldPage(p Preference, g Geometry, lineCount int) bool {
	switch p {
	case Always:
		return true
	case Never:
		return false
	default:
		return lineCount > UsableRows(g)
	}
}

// Overflows reports whether any line is wider than the terminal. An unknown
// width (0) never overflows.
func Overflows(g Geometry, lines []string) bool {
	if g.Columns <= 0 {
		return false
	}
	for _, line := range lines {
		if runewidth.StringWidth(line) > g.Columns {
			return true
		}
	}
	return false
}

// Decide is ShouldPage, except that with Auto, output too wide for the
// terminal is paged as well.
func Decide(p Preference, g Geometry, lines []string) bool {
	if ShouldPage(p, g, len(lines)) {
		return true
	}
	return p == Auto && Overflows(g, lines)
}
