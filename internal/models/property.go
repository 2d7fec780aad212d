package models

// Property is a row of the properties table. CostPerNight is stored in the
// smallest currency unit.
type Property struct {
	ID                int64  `db:"id" json:"id"`
	OwnerID           int64  `db:"owner_id" json:"owner_id"`
	Title             string `db:"title" json:"title"`
	Description       string `db:"description" json:"description"`
	ThumbnailPhotoURL string `db:"thumbnail_photo_url" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `db:"cover_photo_url" json:"cover_photo_url"`
	CostPerNight      int64  `db:"cost_per_night" json:"cost_per_night"`
	ParkingSpaces     int64  `db:"parking_spaces" json:"parking_spaces"`
	NumberOfBathrooms int64  `db:"number_of_bathrooms" json:"number_of_bathrooms"`
	NumberOfBedrooms  int64  `db:"number_of_bedrooms" json:"number_of_bedrooms"`
	Country           string `db:"country" json:"country"`
	Street            string `db:"street" json:"street"`
	City              string `db:"city" json:"city"`
	Province          string `db:"province" json:"province"`
	PostCode          string `db:"post_code" json:"post_code"`
	Active            bool   `db:"active" json:"active"`
}

// PropertyListing is a property together with the average of its review ratings.
type PropertyListing struct {
	Property
	AverageRating float64 `db:"average_rating" json:"average_rating"`
}

// PropertySearchOptions filters a property search. A zero field is not applied.
type PropertySearchOptions struct {
	OwnerID              int64   `json:"owner_id,omitempty"`
	City                 string  `json:"city,omitempty"`
	MinimumPricePerNight int64   `json:"minimum_price_per_night,omitempty"`
	MaximumPricePerNight int64   `json:"maximum_price_per_night,omitempty"`
	MinimumRating        float64 `json:"minimum_rating,omitempty"`
}

// HasRowFilters reports whether any filter applies to property rows before
// grouping. MinimumRating is excluded: it filters aggregated groups.
func (o PropertySearchOptions) HasRowFilters() bool {
	return o.OwnerID != 0 || o.City != "" || o.MinimumPricePerNight != 0 || o.MaximumPricePerNight != 0
}
