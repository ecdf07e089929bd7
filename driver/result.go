package driver

import (
	"database/sql"
	"fmt"
	"time"
)

const NULL = "NULL"

type Result struct {
	Columns      []string
	Rows         [][]string
	RowsAffected int64
	Duration     time.Duration
}

// IsQuery is true when the statement returned a result set, even an empty one
func (r *Result) IsQuery() bool {
	return r.Columns != nil
}

func readRows(rows *sql.Rows) (*Result, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, wrap(err)
	}

	values := make([]interface{}, len(columns))
	pointers := make([]interface{}, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	result := &Result{Columns: columns, Rows: make([][]string, 0)}
	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return nil, wrap(err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = format(v)
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return result, nil
}

func format(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return NULL
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02 15:04:05.999999")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
