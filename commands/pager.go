package commands

import (
	"github.com/karlseguin/mcli/pager"
	log "github.com/sirupsen/logrus"
)

// \pager with no argument goes back to paging only what doesn't fit
type Pager struct {
}

func (cmd Pager) Execute(context Context, args string) {
	p, err := pager.ParsePreference(args)
	if err != nil {
		log.Error("valid options for \\pager are: 'auto', 'always' or 'never'")
		return
	}
	context.Pager(p)
	context.WriteString("Pager is " + p.String() + "\n")
}

type NoPager struct {
}

func (cmd NoPager) Execute(context Context, args string) {
	context.Pager(pager.Never)
	context.WriteString("Pager is never\n")
}
