package commands

type Help struct {
}

func (cmd Help) Execute(context Context, input string) {
	context.WriteString(`
\q - Quits the shell
\? - Outputs this help screen
\h - Alias for \?

\f FORMAT - sets the output format to one of: 'table', 'expanded', 'raw' or 'csv'
\x on|off - turns expanded format on or off (for compatibility with psql)
\timing on|off - shows how long each statement took
\pager [auto|always|never] - pages output which doesn't fit the screen, all output or nothing
\nopager - alias for \pager never
\d [TABLE] - lists tables, or describes TABLE
\. FILE - runs the statements in FILE

Batches containing a destructive statement (drop, delete, truncate, alter,
update or shutdown by default, see destructive_keywords) ask for confirmation.

`)
}
