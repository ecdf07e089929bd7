package statements

// Dialect decides the lexical rules used to find statement boundaries.
//
// MySQL: # starts a comment, backslash escapes inside '...' and "...",
// `...` quotes identifiers and /*! ... */ is an executable comment whose
// content is sent to the server.
//
// Postgres: backslash only escapes inside E'...' strings, $$...$$ and
// $tag$...$tag$ quote function bodies and block comments nest.
type Dialect uint8

const (
	MySQL Dialect = iota
	Postgres
)

// DialectFor maps a driver name to its dialect. Anything that isn't
// postgres gets the MySQL rules.
func DialectFor(driver string) Dialect {
	if driver == "postgres" {
		return Postgres
	}
	return MySQL
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "mysql"
}
