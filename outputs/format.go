package outputs

import (
	"fmt"
	"strings"
	"time"

	"github.com/karlseguin/mcli/driver"
)

type Formatter func(result *driver.Result) []string

const (
	FORMAT_RAW      = "raw"
	FORMAT_TABLE    = "table"
	FORMAT_EXPANDED = "expanded"
	FORMAT_CSV      = "csv"
)

var formatters = map[string]Formatter{
	FORMAT_RAW:      Raw,
	FORMAT_TABLE:    Table,
	FORMAT_EXPANDED: Expanded,
	FORMAT_CSV:      CSV,
}

func Lookup(name string) (Formatter, bool) {
	f, ok := formatters[strings.ToLower(name)]
	return f, ok
}

// Status is the summary line printed after a statement. Timing is only
// included when asked for.
func Status(result *driver.Result, timing bool) string {
	var status string
	if result.IsQuery() {
		switch n := len(result.Rows); n {
		case 0:
			status = "Empty set"
		case 1:
			status = "1 row in set"
		default:
			status = fmt.Sprintf("%d rows in set", n)
		}
	} else if result.RowsAffected == 1 {
		status = "Query OK, 1 row affected"
	} else {
		status = fmt.Sprintf("Query OK, %d rows affected", result.RowsAffected)
	}

	if timing {
		status += fmt.Sprintf(" (%.2f sec)", result.Duration.Round(time.Millisecond).Seconds())
	}
	return status
}
