package models

// Review is a row of the property_reviews table.
type Review struct {
	ID            int64  `db:"id" json:"id"`
	GuestID       int64  `db:"guest_id" json:"guest_id"`
	PropertyID    int64  `db:"property_id" json:"property_id"`
	ReservationID int64  `db:"reservation_id" json:"reservation_id"`
	Rating        int64  `db:"rating" json:"rating"`
	Message       string `db:"message" json:"message"`
}
