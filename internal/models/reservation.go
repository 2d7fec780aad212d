package models

import "time"

type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	GuestID    int64     `db:"guest_id" json:"guest_id"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
}

// GuestReservation is one entry of a guest's reservation history.
type GuestReservation struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating float64  `json:"average_rating"`
}

// Nights returns the number of nights between the start and end dates.
func (r Reservation) Nights() int {
	d := r.EndDate.Sub(r.StartDate)
	if d <= 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
