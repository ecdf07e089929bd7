package pager

import "strings"

// Display is where rendered output ends up. Write prints a single line (and
// its newline). Page hands a whole block to a pager.
type Display interface {
	Write(line string) error
	Page(text string) error
}

// Render sends the lines to the pager as one newline-joined block, or writes
// them one at a time.
func Render(d Display, lines []string, page bool) error {
	if len(lines) == 0 {
		return nil
	}
	if page {
		return d.Page(strings.Join(lines, "\n"))
	}
	for _, line := range lines {
		if err := d.Write(line); err != nil {
			return err
		}
	}
	return nil
}

type Renderer struct {
	Display Display
	// queried on every render, terminals get resized
	Size func() Geometry
}

func (r Renderer) DecideAndRender(lines []string, p Preference) error {
	var g Geometry
	if r.Size != nil {
		g = r.Size()
	}
	return Render(r.Display, lines, Decide(p, g, lines))
}
