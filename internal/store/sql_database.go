// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/museum-user-api/internal/config"
	"github.com/MKhiriev/museum-user-api/internal/logger"
	"github.com/MKhiriev/museum-user-api/migrations"
)

// Dialect describes a supported SQL backend: the database/sql driver name,
// the goose dialect and the squirrel placeholder format.
type Dialect struct {
	Driver      string
	Goose       string
	Placeholder sq.PlaceholderFormat
	Classifier  ErrorClassificator
}

var (
	// Postgres is served by pgx through its database/sql adapter.
	Postgres = Dialect{Driver: "pgx", Goose: "pgx", Placeholder: sq.Dollar, Classifier: NewPostgresErrorClassifier()}

	// SQLite is served by mattn/go-sqlite3 and used for local runs.
	SQLite = Dialect{Driver: "sqlite3", Goose: "sqlite3", Placeholder: sq.Question, Classifier: NewSQLiteErrorClassifier()}
)

// DB wraps a connection pool together with the dialect it was opened with.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened pool. Used by Connect and by tests that hand
// in a sqlmock connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
		errorClassificator: dialect.Classifier,
		logger:             log,
	}
}

// Connect opens the database named by cfg.DSN, pings it and applies the
// embedded migrations. Any failure is returned; callers treat it as fatal.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := resolveDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Msg("error resolving database dsn")
		return nil, err
	}

	// establish connection
	conn, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", dialect.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if dialect.Driver == SQLite.Driver {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", dialect.Driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	db := NewDB(conn, dialect, log)
	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		conn.Close()
		return nil, err
	}

	log.Info().Str("driver", dialect.Driver).Msg("connected to database successfully")
	return db, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Goose)
}

// Dialect returns the backend the pool was opened with.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// classify turns a driver error into one of the package sentinels where a
// rule matches, otherwise wraps it with fallback.
func (db *DB) classify(err error, fallback error) error {
	if db.errorClassificator == nil {
		return fmt.Errorf("%w: %w", fallback, err)
	}

	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case ForeignKeyViolation:
		return ErrNoUserWasFound
	case Transient:
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

// resolveDSN picks a dialect from the DSN scheme and returns the DSN in the
// form the driver expects.
func resolveDSN(dsn string) (Dialect, string, error) {
	lower := strings.ToLower(dsn)

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return Postgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite://"):
		return SQLite, withForeignKeys(dsn[len("sqlite://"):]), nil
	case strings.HasPrefix(lower, "sqlite:"):
		return SQLite, withForeignKeys(dsn[len("sqlite:"):]), nil
	case strings.HasPrefix(lower, "file:"):
		return SQLite, withForeignKeys(dsn), nil
	}

	return Dialect{}, "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

// withForeignKeys turns on go-sqlite3's per-connection foreign key pragma.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
