package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"lightbnb/internal/config"
	"lightbnb/internal/logging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// pingTimeout bounds each connection check during startup.
const pingTimeout = 10 * time.Second

// DB is the query layer. Every method issues exactly one statement through
// the shared pool.
type DB struct {
	*sqlx.DB
	driver string
	logger *zerolog.Logger
}

// Open connects to PostgreSQL when cfg.Postgres has a host, otherwise to the
// SQLite file at cfg.Path. The schema is brought up to date either way.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *zerolog.Logger) (*DB, error) {
	if cfg.Postgres.Enabled() {
		return NewPostgres(ctx, cfg.Postgres, logger)
	}
	return NewDB(cfg.Path, logger)
}

// NewDB opens a SQLite database. ":memory:" gives a private in-memory store.
func NewDB(path string, logger *zerolog.Logger) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sqlx.Open(DriverSQLite, path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// each connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createSQLiteTables(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	l := logging.Component(logger, "database")
	l.Info().Str("driver", DriverSQLite).Str("path", path).Msg("database initialized")

	return &DB{DB: conn, driver: DriverSQLite, logger: l}, nil
}

// NewPostgres opens a pgx-backed pool, waits for the server to answer and
// runs the embedded migrations.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zerolog.Logger) (*DB, error) {
	l := logging.Component(logger, "database")

	connConfig, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	connConfig.Tracer = logging.NewPgxTracer(l)

	sqlDB := stdlib.OpenDB(*connConfig)
	if cfg.MaxConnections > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxConnections)
	}
	conn := sqlx.NewDb(sqlDB, DriverPostgres)

	err = DefaultConnectPolicy.Do(ctx, func(attempt int) error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := conn.PingContext(pingCtx); err != nil {
			l.Warn().Err(err).Int("attempt", attempt).Msg("postgres not reachable yet")
			return err
		}
		return nil
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(ctx, connConfig, cfg.MigrationTable, l); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	l.Info().Str("driver", DriverPostgres).Str("host", cfg.Host).Str("dbname", cfg.DBName).Msg("connected to the database")

	return &DB{DB: conn, driver: DriverPostgres, logger: l}, nil
}

// Driver returns the name of the sql driver behind the pool.
func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) Close() error {
	db.logger.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
