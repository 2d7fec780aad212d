package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lightbnb/internal/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an insert violates a unique constraint.
	ErrConflict = errors.New("already exists")
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// QueryError is a failed round trip that is neither a miss nor a conflict.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: query failed: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsQueryFailure reports whether err is a store failure rather than a miss
// or a conflict.
func IsQueryFailure(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// finish records metrics for op, logs failures and maps driver errors onto
// ErrNotFound, ErrConflict or *QueryError.
func (db *DB) finish(op string, started time.Time, err error) error {
	switch {
	case err == nil:
		metrics.ObserveQuery(op, metrics.ResultOK, started)
		return nil
	case errors.Is(err, sql.ErrNoRows):
		metrics.ObserveQuery(op, metrics.ResultNotFound, started)
		db.logger.Debug().Str("op", op).Msg("no rows")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case isUniqueViolation(err):
		metrics.ObserveQuery(op, metrics.ResultConflict, started)
		db.logger.Warn().Err(err).Str("op", op).Msg("unique constraint violated")
		return fmt.Errorf("%s: %w: %w", op, ErrConflict, err)
	default:
		metrics.ObserveQuery(op, metrics.ResultError, started)
		db.logger.Error().Err(err).Str("op", op).Msg("query failed")
		return &QueryError{Op: op, Err: err}
	}
}
