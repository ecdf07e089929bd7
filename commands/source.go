package commands

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Source struct {
}

func (cmd Source) Execute(context Context, args string) {
	path := strings.TrimSpace(args)
	if path == "" {
		log.Error("usage: \\. FILE")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithFields(log.Fields{"context": "source", "path": path}).Error(err)
		return
	}
	context.Query(string(data))
}
