package outputs

import (
	"strconv"

	"github.com/karlseguin/mcli/driver"
	"github.com/olekukonko/tablewriter"
)

// Expanded renders each row as its own record, one column per line:
//
//	-[ RECORD 1 ]
//	id   | 1
//	name | leto
func Expanded(result *driver.Result) []string {
	if !result.IsQuery() {
		return nil
	}

	maxWidth := 0
	for _, c := range result.Columns {
		if len(c) > maxWidth {
			maxWidth = len(c)
		}
	}

	columns := make([]string, len(result.Columns))
	for i, column := range result.Columns {
		columns[i] = tablewriter.PadRight(column, " ", maxWidth) + " | "
	}

	out := make([]string, 0, len(result.Rows)*(len(columns)+1))
	for rowIndex, row := range result.Rows {
		out = append(out, "-[ RECORD "+strconv.Itoa(rowIndex+1)+" ]")
		for colIndex, column := range columns {
			out = append(out, column+row[colIndex])
		}
	}
	return out
}
