package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/walle-gg/tournament-aggregator/migrations"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Open connects to the database and verifies the connection within timeout.
// The returned handle is safe for concurrent use and must be closed by the caller.
func Open(driver, dsn string, timeout time.Duration) (*sqlx.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	if driver == DriverPostgres {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

// RunMigrations applies every pending migration embedded for the driver.
func RunMigrations(db *sql.DB, driver string) error {
	var (
		instance database.Driver
		err      error
	)
	switch driver {
	case DriverSQLite:
		instance, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case DriverPostgres:
		instance, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migrate driver instance: %w", err)
	}

	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, instance)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
