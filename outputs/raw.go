package outputs

import (
	"strings"

	"github.com/karlseguin/mcli/driver"
)

// Raw is tab separated values with a header line, which is what scripts
// piping into us expect.
func Raw(result *driver.Result) []string {
	if !result.IsQuery() || len(result.Columns) == 0 {
		return nil
	}
	out := make([]string, 0, len(result.Rows)+1)
	out = append(out, strings.Join(result.Columns, "\t"))
	for _, row := range result.Rows {
		out = append(out, strings.Join(row, "\t"))
	}
	return out
}
