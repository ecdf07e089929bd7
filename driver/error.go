package driver

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	DRIVER_ERROR  = "driver"
	SERVER_ERROR  = "server"
	NETWORK_ERROR = "network"
)

type Error struct {
	Source  string
	Message string
	Details string
	Inner   error
}

func (e Error) Error() string {
	if e.Inner != nil && e.Message == "" {
		return e.Inner.Error()
	}

	if e.Details == "" {
		return fmt.Sprintf("%s - %s", e.Source, e.Message)
	}

	return fmt.Sprintf("%s - %s\n%s", e.Source, e.Message, e.Details)
}

func (e Error) Unwrap() error {
	return e.Inner
}

// Closed reports whether the connection is gone, in which case there's no
// point continuing.
func Closed(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && !netErr.Timeout()
}

func driverError(message string) Error {
	return Error{
		Source:  DRIVER_ERROR,
		Message: message,
	}
}

func networkError(err error) Error {
	return Error{
		Source: NETWORK_ERROR,
		Inner:  err,
	}
}

// wrap turns errors returned by database/sql into an Error, keeping the
// original around as Inner.
func wrap(err error) error {
	if err == nil {
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return Error{
			Source:  SERVER_ERROR,
			Message: fmt.Sprintf("ERROR %d (%s): %s", myErr.Number, string(myErr.SQLState[:]), myErr.Message),
			Inner:   err,
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		e := Error{
			Source:  SERVER_ERROR,
			Message: fmt.Sprintf("%s (%s): %s", pgErr.Severity, pgErr.Code, pgErr.Message),
			Details: pgErr.Detail,
			Inner:   err,
		}
		if pgErr.Hint != "" {
			if e.Details != "" {
				e.Details += "\n"
			}
			e.Details += "HINT: " + pgErr.Hint
		}
		return e
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) {
		return networkError(err)
	}
	return Error{Source: DRIVER_ERROR, Inner: err}
}
