package guard

import (
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"
)

// LinePrompter reads the answer with liner. A fresh liner is created for each
// question so the terminal is only in raw mode while we're waiting. Out is
// where the lines before the question go, os.Stdout when nil.
type LinePrompter struct {
	Out io.Writer
}

func (p LinePrompter) Confirm(message string) Answer {
	preamble, question := splitPrompt(message)
	if preamble != "" {
		out := p.Out
		if out == nil {
			out = os.Stdout
		}
		if _, err := io.WriteString(out, preamble); err != nil {
			return answer("", err)
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	return answer(line.Prompt(question))
}

// liner refuses prompts with control characters, so only the last line of a
// multi-line message can be the prompt itself.
func splitPrompt(message string) (string, string) {
	i := strings.LastIndexByte(message, '\n')
	if i == -1 {
		return "", message
	}
	return message[:i+1], message[i+1:]
}

func answer(input string, err error) Answer {
	switch err {
	case nil:
		return ParseAnswer(input)
	case io.EOF:
		return EndOfInput
	case liner.ErrPromptAborted:
		return No
	default:
		log.WithFields(log.Fields{"context": "confirmation prompt"}).Error(err)
		return EndOfInput
	}
}
