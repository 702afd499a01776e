package mysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"dbprobe/config"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
)

// DriverConfig translates a DatabaseConfig into a go-sql-driver config.
// The charset is applied through its general collation, which the server
// uses as the connection character set during the handshake.
func DriverConfig(cfg config.DatabaseConfig) *mysql.Config {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = cfg.Addr()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.DBName
	mc.Timeout = cfg.ConnectTimeout
	if cfg.Charset != "" {
		mc.Collation = cfg.Charset + "_general_ci"
	}
	return mc
}

// UseLogger routes the driver's internal messages through zerolog.
// It must run before any DriverConfig is built.
func UseLogger(log zerolog.Logger) error {
	l := log.With().Str("component", "mysql-driver").Logger()
	return mysql.SetLogger(&l)
}

// singleAttempt keeps database/sql from redialing: the driver reports a
// dropped handshake as driver.ErrBadConn, which database/sql retries.
type singleAttempt struct {
	driver.Connector
}

func (c singleAttempt) Connect(ctx context.Context) (driver.Conn, error) {
	conn, err := c.Connector.Connect(ctx)
	if errors.Is(err, driver.ErrBadConn) {
		return nil, fmt.Errorf("mysql handshake failed: %s", err.Error())
	}
	return conn, err
}

func newConnector(cfg config.DatabaseConfig) (driver.Connector, error) {
	connector, err := mysql.NewConnector(DriverConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("building mysql connector: %w", err)
	}
	return singleAttempt{Connector: connector}, nil
}
