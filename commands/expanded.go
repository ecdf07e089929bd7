package commands

import (
	"strings"

	"github.com/karlseguin/mcli/outputs"
	log "github.com/sirupsen/logrus"
)

type Expanded struct {
}

func (cmd Expanded) Execute(context Context, args string) {
	switch strings.ToLower(strings.TrimSpace(args)) {
	case "on":
		context.Format(outputs.FORMAT_EXPANDED)
		context.WriteString("Expanded display is on\n")
		return
	case "off":
		context.Format(outputs.FORMAT_TABLE)
		context.WriteString("Expanded display is off\n")
		return
	default:
		log.Error("valid options for \\x are: 'on' or 'off'")
	}
}
