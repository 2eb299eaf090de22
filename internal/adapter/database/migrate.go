package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"pollsapp/db"
)

func migrationDriver(sqlDB *sql.DB, driver string) (database.Driver, error) {
	switch driver {
	case DriverSQLite:
		return sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	case DriverPostgres:
		return postgres.WithInstance(sqlDB, &postgres.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// RunMigrations applies the embedded migrations for driver. The migrate
// instance is not closed because closing it would close sqlDB.
func RunMigrations(sqlDB *sql.DB, driver string) error {
	source, err := iofs.New(db.Migrations, db.MigrationsDir(driver))
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	dbDriver, err := migrationDriver(sqlDB, driver)
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, dbDriver)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
