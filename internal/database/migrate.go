package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded PostgreSQL migrations with tern over a
// dedicated connection.
func Migrate(ctx context.Context, connConfig *pgx.ConnConfig, versionTable string, logger *zerolog.Logger) error {
	if versionTable == "" {
		versionTable = "schema_version"
	}

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Int("version", len(m.Migrations)).Msg("database schema up to date")
	} else {
		logger.Info().Int32("from", from).Int("to", len(m.Migrations)).Msg("migrated database schema")
	}
	return nil
}

// SQLite equivalent of the embedded migrations.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS properties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		thumbnail_photo_url TEXT NOT NULL DEFAULT '',
		cover_photo_url TEXT NOT NULL DEFAULT '',
		cost_per_night INTEGER NOT NULL DEFAULT 0,
		parking_spaces INTEGER NOT NULL DEFAULT 0,
		number_of_bathrooms INTEGER NOT NULL DEFAULT 0,
		number_of_bedrooms INTEGER NOT NULL DEFAULT 0,
		country TEXT NOT NULL DEFAULT '',
		street TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		province TEXT NOT NULL DEFAULT '',
		post_code TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		guest_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS property_reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guest_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		reservation_id INTEGER NOT NULL REFERENCES reservations(id) ON DELETE CASCADE,
		rating SMALLINT NOT NULL DEFAULT 0 CHECK (rating BETWEEN 1 AND 5),
		message TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_cost_per_night ON properties(cost_per_night)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_guest_id ON reservations(guest_id)`,
	`CREATE INDEX IF NOT EXISTS idx_property_reviews_property_id ON property_reviews(property_id)`,
}

func createSQLiteTables(db *sqlx.DB) error {
	for _, query := range sqliteSchema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}
	return nil
}
