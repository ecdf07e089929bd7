package pager

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/eiannone/keyboard"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const defaultCommand = "less"

// Terminal is the Display for a real terminal. Paging runs Command, or $PAGER,
// or less. When none of those can be found, the built-in More is used. When
// Out isn't a terminal there's nothing to page to and everything is written
// directly.
type Terminal struct {
	Out     *os.File
	Command string
}

func NewTerminal(out *os.File, command string) Terminal {
	return Terminal{Out: out, Command: command}
}

func (t Terminal) Size() Geometry {
	width, height, err := term.GetSize(int(t.Out.Fd()))
	if err != nil {
		return Geometry{}
	}
	return Geometry{Rows: height, Columns: width}
}

func (t Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.Out.Fd()))
}

func (t Terminal) Write(line string) error {
	_, err := io.WriteString(t.Out, line+"\n")
	return err
}

func (t Terminal) Page(text string) error {
	if !t.IsTerminal() {
		_, err := io.WriteString(t.Out, text+"\n")
		return err
	}

	command := t.command()
	args := strings.Fields(command)
	path, err := exec.LookPath(args[0])
	if err != nil {
		log.WithFields(log.Fields{"context": "pager", "command": command}).Info("pager not found, using built-in pager")
		more := More{Out: t.Out, Size: t.Size, ReadKey: keyboard.GetSingleKey}
		return more.Page(text)
	}

	cmd := exec.Command(path, args[1:]...)
	cmd.Stdin = strings.NewReader(text + "\n")
	cmd.Stdout = t.Out
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if os.Getenv("LESS") == "" {
		cmd.Env = append(cmd.Env, "LESS=-SRXF")
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager %s: %w", command, err)
	}
	return nil
}

func (t Terminal) command() string {
	if c := strings.TrimSpace(t.Command); c != "" {
		return c
	}
	if c := strings.TrimSpace(os.Getenv("PAGER")); c != "" {
		return c
	}
	return defaultCommand
}
