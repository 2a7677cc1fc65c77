package config

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"shop-service/migrations"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DBConfig struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`

	// SQLite
	Path string `env:"PATH" envDefault:"shop.db"`

	// MySQL
	Host string `env:"HOST" envDefault:"127.0.0.1"`
	Port int    `env:"PORT" envDefault:"3306"`
	User string `env:"USER" envDefault:"root"`
	Pass string `env:"PASS"`
	Name string `env:"NAME" envDefault:"shop"`

	ConnectRetries int           `env:"CONNECT_RETRIES" envDefault:"10"`
	RetryInterval  time.Duration `env:"RETRY_INTERVAL"  envDefault:"3s"`
	MigrateRetries int           `env:"MIGRATE_RETRIES" envDefault:"3"`
}

// DSN renders the data source name for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverMySQL {
		mc := mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Pass
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
		mc.DBName = c.Name
		return mc.FormatDSN()
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.Path)
}

// Dialect maps the driver to the migrations dialect.
func (c DBConfig) Dialect() migrations.Dialect {
	if c.Driver == DriverMySQL {
		return migrations.MySQL
	}
	return migrations.SQLite
}

// OpenDB opens and pings the database, retrying while it comes up.
func OpenDB(ctx context.Context, c DBConfig) (*sql.DB, error) {
	attempts := c.ConnectRetries
	if attempts < 1 {
		attempts = 1
	}

	var db *sql.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = sql.Open(c.Driver, c.DSN())
		if err == nil {
			err = db.PingContext(ctx)
			if err == nil {
				if c.Driver == DriverSQLite {
					// one writer at a time
					db.SetMaxOpenConns(1)
				}
				log.Info().Str("driver", c.Driver).Msg("Connected to DB")
				return db, nil
			}
			_ = db.Close()
		}
		log.Warn().Err(err).Msgf("Retry %d: failed to connect to %s DB", i+1, c.Driver)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.RetryInterval):
		}
	}
	return nil, fmt.Errorf("failed to connect to %s DB after %d attempts: %w", c.Driver, attempts, err)
}
