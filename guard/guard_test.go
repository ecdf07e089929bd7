package guard

import (
	"errors"
	"io"
	"testing"
	"unicode"

	"github.com/karlseguin/mcli/statements"
	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
)

type fakePrompter struct {
	answer   Answer
	messages []string
}

func (p *fakePrompter) Confirm(message string) Answer {
	p.messages = append(p.messages, message)
	return p.answer
}

func interactive(v bool) func() bool {
	return func() bool { return v }
}

func TestCheck_NonDestructiveNeverPrompts(t *testing.T) {
	for _, tty := range []bool{true, false} {
		p := &fakePrompter{answer: No}
		g := New(statements.DefaultDestructive, interactive(tty), p)
		assert.Equal(t, Confirmed, g.Check("use test;\nshow databases;\nselect 'drop';"))
		assert.Equal(t, Confirmed, g.Check(""))
		assert.Empty(t, p.messages)
	}
}

func TestCheck_NonInteractive(t *testing.T) {
	p := &fakePrompter{answer: Yes}
	probed := false
	g := New(statements.DefaultDestructive, func() bool { probed = true; return false }, p)
	assert.Equal(t, SkippedNonInteractive, g.Check("drop database foo;"))
	assert.True(t, probed)
	assert.Empty(t, p.messages)

	// a missing probe is treated as non-interactive
	g = New(statements.DefaultDestructive, nil, p)
	assert.Equal(t, SkippedNonInteractive, g.Check("drop database foo;"))
	assert.Empty(t, p.messages)
}

func TestCheck_Interactive(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   Outcome
	}{
		{"yes", Yes, Confirmed},
		{"no", No, Aborted},
		{"eof", EndOfInput, Aborted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePrompter{answer: tt.answer}
			g := New(statements.DefaultDestructive, interactive(true), p)
			assert.Equal(t, tt.want, g.Check("use test;\nshow databases;\ndrop database foo;"))
			assert.Equal(t, []string{Message}, p.messages)
		})
	}
}

func TestCheck_InjectedKeywords(t *testing.T) {
	p := &fakePrompter{answer: No}
	g := New(statements.NewKeywordSet("insert"), interactive(true), p)
	assert.Equal(t, Confirmed, g.Check("drop table x"))
	assert.Equal(t, Aborted, g.Check("# load\nINSERT INTO x SELECT * FROM y"))
	assert.Len(t, p.messages, 1)
}

func TestCheck_Dialect(t *testing.T) {
	p := &fakePrompter{answer: No}
	body := "create function f() returns int as $$ begin delete from t; return 1; end $$ language plpgsql;"
	g := New(statements.DefaultDestructive, interactive(true), p)
	assert.Equal(t, Confirmed, g.WithDialect(statements.Postgres).Check(body))
	assert.Equal(t, Aborted, g.Check(`select 'C:\'; drop table x;`))
	assert.Len(t, p.messages, 1)
}

func TestCheckBatch(t *testing.T) {
	p := &fakePrompter{answer: Yes}
	g := New(statements.DefaultDestructive, interactive(true), p)
	b := statements.Classify("truncate table x", g.Keywords())
	assert.Equal(t, Confirmed, g.CheckBatch(b))
	assert.Len(t, p.messages, 1)

	b = statements.Classify("select 1", g.Keywords())
	assert.Equal(t, Confirmed, g.CheckBatch(b))
	assert.Len(t, p.messages, 1)
}

func TestParseAnswer(t *testing.T) {
	assert.Equal(t, Yes, ParseAnswer("y"))
	assert.Equal(t, Yes, ParseAnswer(" YES\n"))
	assert.Equal(t, No, ParseAnswer("n"))
	assert.Equal(t, No, ParseAnswer(""))
	assert.Equal(t, No, ParseAnswer("yep"))
}

func TestLinerAnswer(t *testing.T) {
	assert.Equal(t, Yes, answer("yes", nil))
	assert.Equal(t, No, answer("no", nil))
	assert.Equal(t, EndOfInput, answer("", io.EOF))
	assert.Equal(t, No, answer("", liner.ErrPromptAborted))
	assert.Equal(t, EndOfInput, answer("", errors.New("broken terminal")))
}

func TestSplitPrompt(t *testing.T) {
	preamble, question := splitPrompt(Message)
	assert.Equal(t, "You're about to run a destructive command.\n", preamble)
	assert.Equal(t, "Do you want to proceed? (y/n): ", question)
	for _, r := range question {
		assert.False(t, unicode.IsControl(r), "control character %q in prompt", r)
	}

	preamble, question = splitPrompt("sure? ")
	assert.Equal(t, "", preamble)
	assert.Equal(t, "sure? ", question)

	preamble, question = splitPrompt("a\nb\nc? ")
	assert.Equal(t, "a\nb\n", preamble)
	assert.Equal(t, "c? ", question)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "confirmed", Confirmed.String())
	assert.Equal(t, "aborted", Aborted.String())
	assert.Equal(t, "skipped (non-interactive)", SkippedNonInteractive.String())
}
