// Package database provides database connection management.
package database

import (
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Supported drivers. SQLite is the default for local single-user use;
// MySQL is available for shared deployments.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

func init() {
	// modernc.org/sqlite registers itself under "sqlite", which sqlx
	// does not know a bindvar convention for.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

// Config describes how to reach the database. Path applies to sqlite;
// the remaining fields apply to mysql.
type Config struct {
	Driver   string `mapstructure:"driver" validate:"omitempty,oneof=sqlite mysql"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// Open opens a connection for the configured driver.
func Open(cfg Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return openSQLite(cfg)
	case DriverMySQL:
		return openMySQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openSQLite(cfg Config) (*sqlx.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite driver requires a database path")
	}
	db, err := sqlx.Open(DriverSQLite, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(sqlite) > %w", err)
	}
	// A single connection avoids SQLITE_BUSY under the file lock and
	// matches the scheduler's single-writer discipline.
	db.SetMaxOpenConns(1)
	return db, nil
}

func openMySQL(cfg Config) (*sqlx.DB, error) {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true

	db, err := sqlx.Open(DriverMySQL, mysqlCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open(mysql) > %w", err)
	}
	return db, nil
}
