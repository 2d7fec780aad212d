package database

import (
	"context"
	"time"

	"lightbnb/internal/models"
)

const opCreateReview = "create_review"

// CreateReview inserts a property review and sets its ID.
func (db *DB) CreateReview(ctx context.Context, review *models.Review) error {
	stmt := `INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message)
	         VALUES ($1, $2, $3, $4, $5)
	         RETURNING id`

	started := time.Now()
	err := db.QueryRowContext(ctx, stmt,
		review.GuestID,
		review.PropertyID,
		review.ReservationID,
		review.Rating,
		review.Message,
	).Scan(&review.ID)
	return db.finish(opCreateReview, started, err)
}
