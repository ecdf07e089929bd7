package pager

import (
	"io"
	"strings"

	"github.com/eiannone/keyboard"
)

const morePrompt = "--More--"

// More is a minimal pager. It shows a screen, then waits for a key: space
// for the next screen, enter for the next line, q or escape to stop.
type More struct {
	Out     io.Writer
	Size    func() Geometry
	ReadKey func() (rune, keyboard.Key, error)
}

func (m More) Page(text string) error {
	lines := strings.Split(text, "\n")
	step := UsableRows(m.Size())
	for shown := 0; shown < len(lines); {
		end := shown + step
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[shown:end] {
			if _, err := io.WriteString(m.Out, line+"\n"); err != nil {
				return err
			}
		}
		shown = end
		if shown == len(lines) {
			return nil
		}

		if _, err := io.WriteString(m.Out, morePrompt); err != nil {
			return err
		}
		ch, key, err := m.ReadKey()
		if _, werr := io.WriteString(m.Out, "\r"+strings.Repeat(" ", len(morePrompt))+"\r"); err == nil {
			err = werr
		}
		if err != nil {
			return err
		}

		switch {
		case ch == 'q' || ch == 'Q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
			return nil
		case key == keyboard.KeyEnter:
			step = 1
		default:
			// the terminal might have been resized
			step = UsableRows(m.Size())
		}
	}
	return nil
}
