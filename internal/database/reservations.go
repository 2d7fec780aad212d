package database

import (
	"context"
	"time"

	"lightbnb/internal/models"
	"lightbnb/internal/query"
)

const (
	opListReservationsForGuest = "list_reservations_for_guest"
	opCreateReservation        = "create_reservation"
)

// ListReservationsForGuest returns the guest's reservations with the reserved
// property, earliest start date first. limit <= 0 means models.DefaultLimit.
// A guest without reservations gets an empty slice.
func (db *DB) ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error) {
	if limit <= 0 {
		limit = models.DefaultLimit
	}

	sqlText, args, err := query.NewSelect(
		`reservations.id, reservations.guest_id, reservations.property_id,
		reservations.start_date, reservations.end_date, `+
			qualifiedPropertyColumns()+`,
		COALESCE(`+averageRating+`, 0) AS average_rating`,
		`reservations
		JOIN properties ON reservations.property_id = properties.id
		LEFT JOIN property_reviews ON properties.id = property_reviews.property_id`,
	).
		Where(query.Equal("reservations.guest_id", guestID)).
		GroupBy("reservations.id, properties.id").
		OrderBy("reservations.start_date, reservations.id").
		Limit(limit).
		Build()

	started := time.Now()
	if err != nil {
		return nil, db.finish(opListReservationsForGuest, started, err)
	}

	rows, err := db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, db.finish(opListReservationsForGuest, started, err)
	}
	defer rows.Close()

	reservations := []*models.GuestReservation{}
	for rows.Next() {
		r := &models.GuestReservation{}
		p := &r.Property
		err := rows.Scan(
			&r.ID, &r.GuestID, &r.PropertyID, &r.StartDate, &r.EndDate,
			&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL, &p.CoverPhotoURL,
			&p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
			&p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active,
			&r.AverageRating,
		)
		if err != nil {
			return nil, db.finish(opListReservationsForGuest, started, err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, db.finish(opListReservationsForGuest, started, err)
	}

	return reservations, db.finish(opListReservationsForGuest, started, nil)
}

// CreateReservation inserts reservation and sets its ID.
func (db *DB) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	stmt := `INSERT INTO reservations (start_date, end_date, property_id, guest_id)
	         VALUES ($1, $2, $3, $4)
	         RETURNING id`

	started := time.Now()
	err := db.QueryRowContext(ctx, stmt,
		reservation.StartDate.UTC(),
		reservation.EndDate.UTC(),
		reservation.PropertyID,
		reservation.GuestID,
	).Scan(&reservation.ID)
	return db.finish(opCreateReservation, started, err)
}
