package outputs

import (
	"bytes"
	"strings"

	"github.com/karlseguin/mcli/driver"
	"github.com/olekukonko/tablewriter"
)

// Table renders a query result as a bordered table. Statements which didn't
// return a result set have nothing to render.
func Table(result *driver.Result) []string {
	if !result.IsQuery() || len(result.Columns) == 0 {
		return nil
	}

	var buffer bytes.Buffer
	table := tablewriter.NewWriter(&buffer)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetReflowDuringAutoWrap(false)
	table.SetHeader(result.Columns)
	table.AppendBulk(result.Rows)
	table.Render()

	return lines(buffer.String())
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
