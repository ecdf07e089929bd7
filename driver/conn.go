package driver

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Conn pins a single session so that things like USE and SET stick across
// statements.
type Conn struct {
	db     *sql.DB
	conn   *sql.Conn
	driver string
}

func Open(ctx context.Context, config Config) (*Conn, error) {
	name, dsn, err := config.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, wrap(err)
	}
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	conn, err := db.Conn(ctx)
	if err == nil {
		err = conn.PingContext(ctx)
	}
	if err != nil {
		db.Close()
		return nil, wrap(err)
	}

	driver := config.Driver
	if driver == "" {
		driver = MYSQL
	}
	return &Conn{db: db, conn: conn, driver: driver}, nil
}

func (c *Conn) Driver() string {
	return c.driver
}

func (c *Conn) Close() error {
	c.conn.Close()
	return c.db.Close()
}

// Execute runs a single statement. Queries return their rows, anything else
// returns the number of affected rows.
func (c *Conn) Execute(ctx context.Context, statement string, query bool) (*Result, error) {
	start := time.Now()
	if !query {
		res, err := c.conn.ExecContext(ctx, statement)
		if err != nil {
			return nil, wrap(err)
		}
		// not every driver or statement can report this
		affected, _ := res.RowsAffected()
		return &Result{RowsAffected: affected, Duration: time.Since(start)}, nil
	}

	rows, err := c.conn.QueryContext(ctx, statement)
	if err != nil {
		return nil, wrap(err)
	}
	result, err := readRows(rows)
	if err != nil {
		return nil, err
	}
	result.Duration = time.Since(start)
	return result, nil
}

// Rows runs a query with ? placeholders, rewritten for drivers which use a
// different style.
func (c *Conn) Rows(ctx context.Context, query string, args ...interface{}) ([][]string, error) {
	rows, err := c.conn.QueryContext(ctx, c.rebind(query), args...)
	if err != nil {
		return nil, wrap(err)
	}
	result, err := readRows(rows)
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

// Database is the current database (or schema), "" when none is selected
func (c *Conn) Database(ctx context.Context) (string, error) {
	query := "select database()"
	if c.driver == POSTGRES {
		query = "select current_database()"
	}
	var name sql.NullString
	if err := c.conn.QueryRowContext(ctx, query).Scan(&name); err != nil {
		return "", wrap(err)
	}
	return name.String, nil
}

// Schema is where unqualified table names are looked up: the current
// database for mysql, the first schema on the search_path for postgres.
func (c *Conn) Schema(ctx context.Context) (string, error) {
	if c.driver != POSTGRES {
		return c.Database(ctx)
	}
	var name sql.NullString
	if err := c.conn.QueryRowContext(ctx, "select current_schema()").Scan(&name); err != nil {
		return "", wrap(err)
	}
	return name.String, nil
}

func (c *Conn) rebind(query string) string {
	if c.driver != POSTGRES || strings.IndexByte(query, '?') == -1 {
		return query
	}
	var sb strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteByte(query[i])
	}
	return sb.String()
}
