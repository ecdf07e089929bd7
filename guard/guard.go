package guard

import (
	"strings"

	"github.com/karlseguin/mcli/statements"
	log "github.com/sirupsen/logrus"
)

type Outcome uint8

const (
	Confirmed Outcome = iota
	Aborted
	// There was a destructive statement but nobody to ask. What to do about it
	// is up to the caller.
	SkippedNonInteractive
)

func (o Outcome) String() string {
	switch o {
	case Confirmed:
		return "confirmed"
	case Aborted:
		return "aborted"
	case SkippedNonInteractive:
		return "skipped (non-interactive)"
	default:
		return "unknown"
	}
}

type Answer uint8

const (
	Yes Answer = iota
	No
	EndOfInput
)

// Asks the user a yes/no question. Implementations must not be called unless
// there's an interactive terminal to answer.
type Prompter interface {
	Confirm(message string) Answer
}

const Message = "You're about to run a destructive command.\nDo you want to proceed? (y/n): "

type Guard struct {
	dialect     statements.Dialect
	keywords    statements.KeywordSet
	interactive func() bool
	prompter    Prompter
}

func New(keywords statements.KeywordSet, interactive func() bool, prompter Prompter) *Guard {
	return &Guard{
		keywords:    keywords,
		interactive: interactive,
		prompter:    prompter,
	}
}

// Check decides whether the batch can run. Batches without a destructive
// statement are confirmed without a prompt. Otherwise the user is asked, once,
// unless there's no terminal, in which case we never try to read.
func (g *Guard) Check(batch string) Outcome {
	if !g.dialect.AnyMatches(batch, g.keywords) {
		return Confirmed
	}
	return g.confirm()
}

// CheckBatch is Check for an already classified batch
func (g *Guard) CheckBatch(batch statements.Batch) Outcome {
	if !batch.Destructive {
		return Confirmed
	}
	return g.confirm()
}

// WithDialect sets the rules used to split batches given to Check (MySQL by
// default).
func (g *Guard) WithDialect(d statements.Dialect) *Guard {
	g.dialect = d
	return g
}

func (g *Guard) Keywords() statements.KeywordSet {
	return g.keywords
}

func (g *Guard) confirm() Outcome {
	if g.interactive == nil || !g.interactive() {
		log.WithFields(log.Fields{"context": "destructive guard"}).Info("not a terminal, skipping confirmation")
		return SkippedNonInteractive
	}

	switch g.prompter.Confirm(Message) {
	case Yes:
		return Confirmed
	default:
		return Aborted
	}
}

// ParseAnswer treats y and yes (any case) as a yes and everything else,
// including an empty line, as a no.
func ParseAnswer(line string) Answer {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return Yes
	default:
		return No
	}
}
