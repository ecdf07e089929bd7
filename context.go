package main

import (
	"context"
	"fmt"
	"io"

	"github.com/karlseguin/mcli/driver"
	"github.com/karlseguin/mcli/guard"
	"github.com/karlseguin/mcli/outputs"
	"github.com/karlseguin/mcli/pager"
	"github.com/karlseguin/mcli/statements"
	log "github.com/sirupsen/logrus"
)

// Executor is the part of driver.Conn the shell needs
type Executor interface {
	Execute(ctx context.Context, statement string, query bool) (*driver.Result, error)
	Rows(ctx context.Context, query string, args ...interface{}) ([][]string, error)
	Database(ctx context.Context) (string, error)
	Schema(ctx context.Context) (string, error)
	Driver() string
	Close() error
}

type Context struct {
	out      io.Writer
	conn     Executor
	guard    *guard.Guard
	renderer pager.Renderer
	dialect  statements.Dialect
	readOnly statements.KeywordSet

	format    string
	formatter outputs.Formatter
	timing    bool
	pager     pager.Preference

	// whether to ask before running destructive statements
	warn bool
	// whether to print the "N rows in set" status lines
	status bool

	database string
	failed   bool
	exit     bool
}

func NewContext(conn Executor, out io.Writer, renderer pager.Renderer, g *guard.Guard, preferences Preferences) *Context {
	c := &Context{
		out:      out,
		conn:     conn,
		guard:    g,
		renderer: renderer,
		dialect:  statements.DialectFor(conn.Driver()),
		readOnly: statements.NewKeywordSet(preferences.ReadOnlyKeywords...),
		timing:   preferences.Timing,
		warn:     preferences.DestructiveWarning,
	}

	if err := c.Format(preferences.Format); err != nil {
		log.WithFields(log.Fields{"context": "preferences", "format": preferences.Format}).Error(err)
		c.Format(outputs.FORMAT_TABLE)
	}

	p, err := pager.ParsePreference(preferences.Pager)
	if err != nil {
		log.WithFields(log.Fields{"context": "preferences"}).Error(err)
	}
	c.pager = p
	c.refreshDatabase()
	return c
}

func (c *Context) Close() {
	c.conn.Close()
}

func (c *Context) WriteString(s string) {
	io.WriteString(c.out, s)
}

func (c *Context) Format(name string) error {
	formatter, ok := outputs.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown format %q", name)
	}
	c.format = name
	c.formatter = formatter
	return nil
}

func (c *Context) Timing(on bool) {
	c.timing = on
}

func (c *Context) Pager(p pager.Preference) {
	c.pager = p
}

func (c *Context) Exit() {
	c.exit = true
}

func (c *Context) Rows(query string, args ...interface{}) ([][]string, error) {
	return c.conn.Rows(context.Background(), query, args...)
}

func (c *Context) Schema() string {
	schema, err := c.conn.Schema(context.Background())
	if err != nil {
		handleDriverError(err)
	}
	return schema
}

func (c *Context) Database() string {
	return c.database
}

// Query runs a batch: it's split into statements, checked for destructive
// statements and then executed one statement at a time. The first failing
// statement stops the batch.
func (c *Context) Query(batch string) {
	b := c.dialect.Classify(batch, c.guard.Keywords())
	if len(b.Statements) == 0 {
		return
	}

	if c.warn {
		switch c.guard.CheckBatch(b) {
		case guard.Aborted:
			c.WriteString("Wise choice!\n")
			c.failed = true
			return
		case guard.SkippedNonInteractive:
			log.WithFields(log.Fields{"context": "destructive guard"}).Warn("running destructive statements without confirmation")
		}
	}

	for _, stmt := range b.Statements {
		if !c.execute(stmt) {
			c.failed = true
			return
		}
	}
}

func (c *Context) execute(stmt string) bool {
	result, err := c.conn.Execute(context.Background(), stmt, statements.MatchesAny(stmt, c.readOnly))
	if err != nil {
		handleDriverError(err)
		return false
	}

	lines := c.formatter(result)
	if c.status {
		lines = append(lines, outputs.Status(result, c.timing))
	}

	if err := c.renderer.DecideAndRender(lines, c.pager); err != nil {
		log.WithFields(log.Fields{"context": "render output"}).Error(err)
		c.failed = true
	}

	if statements.MatchesAny(stmt, statements.Use) {
		c.refreshDatabase()
	}
	return true
}

func (c *Context) refreshDatabase() {
	database, err := c.conn.Database(context.Background())
	if err != nil {
		log.WithFields(log.Fields{"context": "current database"}).Error(err)
		return
	}
	c.database = database
}
