package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// NewDB opens a connection pool for driver ("mysql" or "sqlite") and dsn.
func NewDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == DriverSQLite {
		// SQLite serialises writers; a single connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed", "driver", driver, "error", err)
		db.Close()
		return nil, fmt.Errorf("pinging %s database: %w", driver, err)
	}

	return db, nil
}
