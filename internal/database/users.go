package database

import (
	"context"
	"time"

	"lightbnb/internal/models"
)

const (
	opGetUserByEmail = "get_user_by_email"
	opGetUserByID    = "get_user_by_id"
	opCreateUser     = "create_user"
)

const userColumns = `id, name, email, password`

// GetUserByEmail returns the user registered with email, or ErrNotFound.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return db.queryUser(ctx, opGetUserByEmail, query, email)
}

// GetUserByID returns the user with id, or ErrNotFound.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return db.queryUser(ctx, opGetUserByID, query, id)
}

func (db *DB) queryUser(ctx context.Context, op, query string, args ...interface{}) (*models.User, error) {
	started := time.Now()
	var user models.User
	if err := db.GetContext(ctx, &user, query, args...); err != nil {
		return nil, db.finish(op, started, err)
	}
	return &user, db.finish(op, started, nil)
}

// CreateUser inserts user and fills it from the returned row.
func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (name, email, password)
	          VALUES ($1, $2, $3)
	          RETURNING ` + userColumns
	started := time.Now()
	err := db.QueryRowxContext(ctx, query, user.Name, user.Email, user.Password).StructScan(user)
	return db.finish(opCreateUser, started, err)
}
