package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	"github.com/jpillora/opts"
	"github.com/karlseguin/mcli/commands"
	"github.com/karlseguin/mcli/driver"
	"github.com/karlseguin/mcli/guard"
	"github.com/karlseguin/mcli/outputs"
	"github.com/karlseguin/mcli/pager"
	"github.com/karlseguin/mcli/statements"

	"github.com/knz/go-libedit"
	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type Command interface {
	Execute(context commands.Context, arguments string)
}

var (
	cmds = make(map[string]Command)
)

func init() {
	cmds["\\q"] = commands.Quit{}
	cmds["\\h"] = commands.Help{}
	cmds["\\?"] = commands.Help{}
	cmds["\\f"] = commands.Format{}
	cmds["\\x"] = commands.Expanded{}
	cmds["\\d"] = commands.Describe{}
	cmds["\\timing"] = commands.Timing{}
	cmds["\\pager"] = commands.Pager{}
	cmds["\\nopager"] = commands.NoPager{}
	cmds["\\."] = commands.Source{}
}

type flags struct {
	Port     uint32 `opts:"help=port to connect to (defaults to 3306 or 5432),short=P"`
	Host     string `opts:"help=host to connect to,short=H"`
	Database string `opts:"help=database to connect to,short=d"`
	UserName string `opts:"name=username,help=username to connect as,short=u"`
	Password string `opts:"help=password to connect with (prompted for when missing),short=p"`
	Driver   string `opts:"help=mysql or postgres,short=D"`
	Execute  string `opts:"help=execute the statements and quit,short=e"`
	Table    bool   `opts:"help=output as a table even when not interactive,short=t"`
	CSV      bool   `opts:"name=csv,help=output as csv"`
	Pager    string `opts:"help=auto or always or never"`
	NoPager  bool   `opts:"name=no-pager,help=never page output"`
	Config   string `opts:"help=preference file to use instead of the default"`
	Verbose  bool   `opts:"help=verbose logging,short=v"`
	Quiet    bool   `opts:"help=quiet logging,short=q"`
}

func main() {
	args := flags{
		Host:     "127.0.0.1",
		UserName: "root",
		Driver:   driver.MYSQL,
	}
	opts.Parse(&args)

	log.SetOutput(os.Stderr)
	if args.Verbose {
		log.SetLevel(log.InfoLevel)
	} else if args.Quiet {
		log.SetLevel(log.FatalLevel)
	} else {
		log.SetLevel(log.ErrorLevel)
	}

	preferences := applyFlags(loadPreferences(args.Config), args)
	log.WithFields(log.Fields{"context": "preferences dump"}).Infof("historyFile = %s", preferences.HistoryFile)
	log.WithFields(log.Fields{"context": "preferences dump"}).Infof("passwordFile = %s", preferences.PasswordFile)

	config := driver.Config{
		Driver:   args.Driver,
		Host:     args.Host,
		Port:     args.Port,
		UserName: args.UserName,
		Password: args.Password,
		Database: args.Database,
	}
	if config.Port == 0 {
		config.Port = 3306
		if config.Driver == driver.POSTGRES {
			config.Port = 5432
		}
	}
	if config.Password == "" {
		config.Password = getPassword(preferences, config)
	}

	conn, err := driver.Open(context.Background(), config)
	if err != nil {
		log.WithFields(log.Fields{
			"host":    config.Address(),
			"context": "connect to database",
		}).Fatal(err)
	}

	interactive := func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	terminal := pager.NewTerminal(os.Stdout, preferences.PagerCommand)
	renderer := pager.Renderer{Display: terminal, Size: terminal.Size}
	g := guard.New(statements.NewKeywordSet(preferences.DestructiveKeywords...), interactive, guard.LinePrompter{Out: os.Stdout}).
		WithDialect(statements.DialectFor(conn.Driver()))

	context := NewContext(conn, os.Stdout, renderer, g, preferences)
	defer context.Close()

	if args.Execute != "" {
		context.Query(args.Execute)
		exit(context)
		return
	}

	if !interactive() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.WithFields(log.Fields{"context": "read stdin"}).Fatal(err)
		}
		context.Query(string(data))
		exit(context)
		return
	}

	context.status = true
	repl(context, preferences)
}

// batch runs have no other way to tell the caller something went wrong
func exit(context *Context) {
	if context.failed {
		context.Close()
		os.Exit(1)
	}
}

func applyFlags(preferences Preferences, args flags) Preferences {
	if args.Pager != "" {
		preferences.Pager = args.Pager
	}
	if args.NoPager {
		preferences.Pager = pager.Never.String()
	}

	interactive := args.Execute == "" && term.IsTerminal(int(os.Stdin.Fd()))
	switch {
	case args.CSV:
		preferences.Format = outputs.FORMAT_CSV
	case args.Table:
		preferences.Format = outputs.FORMAT_TABLE
	case !interactive:
		// like the mysql client's batch mode, scripts get tab separated values
		preferences.Format = outputs.FORMAT_RAW
	}
	return preferences
}

func repl(context *Context, preferences Preferences) {
	prompt, err := libedit.InitFiles("mcli", true, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		log.WithFields(log.Fields{"context": "libedit initialization"}).Fatal(err)
	}

	defer prompt.Close()
	prompt.RebindControlKeys()
	if err := prompt.UseHistory(500, true); err != nil {
		log.WithFields(log.Fields{"context": "libedit use history"}).Error(err)
	} else if preferences.HistoryFile != "" {
		prompt.LoadHistory(preferences.HistoryFile)
		prompt.SetAutoSaveHistory(preferences.HistoryFile, false)
	}

	for !context.exit {
		prompt.SetLeftPrompt(leftPrompt(context.Database()))
		line, err := prompt.GetLine()
		if err != nil {
			if err == libedit.ErrInterrupted || err == io.EOF {
				return
			}
			log.WithFields(log.Fields{"context": "GetLine"}).Fatal(err)
		}

		if strings.TrimSpace(line) == "" {
			// blank line, do nothing
			continue
		}

		if line[0] == '\\' {
			// any line that starts with \ is treated as a command
			command(context, strings.TrimSpace(line))
		} else {
			// any other line is treated as the start of a statement
			statement(prompt, context, line)
		}
	}
}

func leftPrompt(database string) string {
	if database == "" {
		database = "(none)"
	}
	return database + "> "
}

// Commands are processed by this client itself. They're always single-lined.
func command(context *Context, line string) {
	if len(line) == 0 {
		return
	}

	args := ""
	cmd := line
	parts := strings.SplitN(line, " ", 2)

	if len(parts) == 2 {
		cmd = parts[0]
		args = parts[1]
	}

	c := cmds[cmd]
	if c == nil {
		log.Error("invalid command, type \\h for a list of commands")
		return
	}
	c.Execute(context, args)
}

// Statements are sent to the server. They're semi-colon terminated and thus
// can span multiple lines, so once here, we keep reading lines until we have
// a complete batch.
func statement(prompt libedit.EditLine, context *Context, line string) {
	var buffer bytes.Buffer
	for {
		buffer.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			// keeps a trailing -- comment from swallowing the next line
			buffer.WriteByte('\n')
		}
		if context.dialect.Complete(buffer.String()) {
			batch := strings.TrimSpace(buffer.String())
			prompt.AddHistory(batch)
			prompt.SaveHistory()
			context.Query(batch)
			return
		}
		prompt.SetLeftPrompt("    -> ")
		var err error
		if line, err = prompt.GetLine(); err != nil {
			// ^C or ^D abandons the statement
			return
		}
	}
}

func handleDriverError(err error) {
	if driver.Closed(err) {
		log.Fatal("connection closed: ", err)
	}
	log.Error(err)
}
