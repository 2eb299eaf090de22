package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver          string
	DSN             string
	LogQueries      bool
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
	Driver       string
}

// sqlDriverName is the database/sql driver registered for a configured driver.
func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", nil
	case DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

func open(opts Options) (*sql.DB, error) {
	driverName, err := sqlDriverName(opts.Driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := otelsql.Open(driverName, opts.DSN,
		otelsql.WithDBSystem(opts.Driver),
		otelsql.WithDBName("pollsapp"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}

	if !opts.LogQueries {
		return sqlDB, nil
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "sql").Logger()
	logged := sqldblogger.OpenDriver(opts.DSN, sqlDB.Driver(), zerologadapter.New(logger),
		sqldblogger.WithMinimumLevel(sqldblogger.LevelDebug),
	)

	// the traced handle only lent its driver, it never opened a connection
	sqlDB.Close()

	return logged, nil
}

// Open connects to the configured store, applies pending migrations and
// returns a handle whose query builder matches the driver's placeholders.
func Open(ctx context.Context, opts Options) (*DB, error) {
	sqlDB, err := open(opts)
	if err != nil {
		return nil, err
	}

	// every connection to an in-memory sqlite database is a new empty database
	if opts.Driver == DriverSQLite && isMemoryDSN(opts.DSN) {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		if opts.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		}
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Driver, err)
	}

	if err := RunMigrations(sqlDB, opts.Driver); err != nil {
		sqlDB.Close()
		return nil, err
	}

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(placeholderFor(opts.Driver))

	return &DB{
		DB:           sqlDB,
		QueryBuilder: &queryBuilder,
		Driver:       opts.Driver,
	}, nil
}

func placeholderFor(driver string) squirrel.PlaceholderFormat {
	if driver == DriverPostgres {
		return squirrel.Dollar
	}

	return squirrel.Question
}

// NotFound converts sql.ErrNoRows into the core's not-found sentinel.
func NotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundError{err}
	}

	return err
}
