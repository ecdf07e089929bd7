package commands

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Describe struct {
}

func (cmd Describe) Execute(context Context, args string) {
	args = strings.TrimSuffix(strings.TrimSpace(args), ";")
	schema := context.Schema()

	if args == "" {
		context.Query(fmt.Sprintf(`
			select table_schema as "Schema", table_name as "Name", lower(table_type) as "Type"
			from information_schema.tables
			where table_schema = '%s'
			order by table_name;
		`, strings.ReplaceAll(schema, "'", "''")))
		return
	}

	table := args
	parts := strings.SplitN(table, ".", 2)
	if len(parts) == 2 {
		schema = parts[0]
		table = parts[1]
	}

	columns, err := context.Rows(`
		select column_name, data_type, is_nullable, column_default
		from information_schema.columns
		where table_schema = ? and table_name = ?
		order by ordinal_position
	`, schema, table)

	if err != nil {
		log.WithFields(log.Fields{"context": "describe get columns", "schema": schema, "table": table}).Error(err)
		return
	}

	if len(columns) == 0 {
		context.WriteString(fmt.Sprintf("unknown %s\n", args))
		return
	}

	context.WriteString(describe(schema, table, columns))
}

func describe(schema string, table string, columns [][]string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("create table %s.%s (\n", schema, table))

	for i, column := range columns {
		sb.WriteString(fmt.Sprintf("  %s %s", column[0], column[1]))

		if strings.EqualFold(column[2], "no") {
			sb.WriteString(" not null")
		} else {
			sb.WriteString(" null")
		}
		if column[3] != "NULL" {
			sb.WriteString(fmt.Sprintf(" default %s", column[3]))
		}
		if i == len(columns)-1 {
			sb.WriteString("\n")
		} else {
			sb.WriteString(",\n")
		}
	}
	sb.WriteString(")\n")
	return sb.String()
}
