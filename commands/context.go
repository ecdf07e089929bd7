package commands

import "github.com/karlseguin/mcli/pager"

type Context interface {
	WriteString(string)
	Format(string) error
	Timing(bool)
	Pager(pager.Preference)
	Query(string)
	Rows(query string, args ...interface{}) ([][]string, error)
	Schema() string
	Exit()
}
