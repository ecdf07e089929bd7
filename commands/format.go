package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

type Format struct {
}

func (cmd Format) Execute(context Context, args string) {
	if err := context.Format(strings.ToLower(strings.TrimSpace(args))); err != nil {
		log.Error("valid formats for \\f are: 'table', 'expanded', 'raw' and 'csv'")
	}
}
