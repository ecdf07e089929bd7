package driver

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

const (
	MYSQL    = "mysql"
	POSTGRES = "postgres"
)

type Config struct {
	// mysql or postgres
	Driver   string
	Host     string
	Port     uint32
	UserName string
	Password string
	Database string
}

func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.FormatUint(uint64(c.Port), 10))
}

// DSN returns the driver name to give database/sql along with the data source
func (c Config) DSN() (string, string, error) {
	switch c.Driver {
	case MYSQL, "":
		m := mysql.NewConfig()
		m.User = c.UserName
		m.Passwd = c.Password
		m.Net = "tcp"
		m.Addr = c.Address()
		m.DBName = c.Database
		return "mysql", m.FormatDSN(), nil
	case POSTGRES:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.UserName, c.Password),
			Host:   c.Address(),
			Path:   "/" + c.Database,
		}
		return "pgx", u.String(), nil
	default:
		return "", "", driverError(fmt.Sprintf("unknown driver %q, valid drivers are: 'mysql' and 'postgres'", c.Driver))
	}
}

// The key used to look the password up in the password file
func (c Config) Fingerprint() string {
	return fmt.Sprintf("%s:%d:%s:%s:", c.Host, c.Port, c.Database, c.UserName)
}
