package database

import (
	"context"
	"strings"
	"time"

	"lightbnb/internal/models"
	"lightbnb/internal/query"
)

const (
	opSearchProperties = "search_properties"
	opCreateProperty   = "create_property"
)

// propertyFields lists the properties columns in models.Property order.
var propertyFields = []string{
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
	"cost_per_night", "parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
	"country", "street", "city", "province", "post_code", "active",
}

// averageRating is the mean review rating of the grouped property.
const averageRating = `CAST(avg(property_reviews.rating) AS DOUBLE PRECISION)`

// qualifiedPropertyColumns returns "properties.x AS x, ..." so every driver
// reports the bare column name.
func qualifiedPropertyColumns() string {
	cols := make([]string, len(propertyFields))
	for i, f := range propertyFields {
		cols[i] = "properties." + f + " AS " + f
	}
	return strings.Join(cols, ", ")
}

// propertySearch builds the search statement. Row filters are added in a
// fixed order: owner, city, price, and the rating filter goes to HAVING
// because it compares an aggregate.
func propertySearch(opts models.PropertySearchOptions, limit int) *query.Select {
	if limit <= 0 {
		limit = models.DefaultLimit
	}

	s := query.NewSelect(
		qualifiedPropertyColumns()+", "+averageRating+" AS average_rating",
		"properties JOIN property_reviews ON properties.id = property_reviews.property_id",
	)

	if opts.HasRowFilters() {
		s.Where(rowFilters(opts)...)
	}

	s.GroupBy("properties.id")

	if opts.MinimumRating != 0 {
		s.Having(query.AtLeast("avg(property_reviews.rating)", opts.MinimumRating))
	}

	return s.OrderBy("properties.cost_per_night").Limit(limit)
}

// rowFilters returns the WHERE predicates of opts in their fixed order.
func rowFilters(opts models.PropertySearchOptions) []query.Predicate {
	var preds []query.Predicate
	if opts.OwnerID != 0 {
		preds = append(preds, query.Equal("properties.owner_id", opts.OwnerID))
	}
	if opts.City != "" {
		preds = append(preds, query.Contains("properties.city", opts.City))
	}

	minPrice, maxPrice := opts.MinimumPricePerNight, opts.MaximumPricePerNight
	switch {
	case minPrice != 0 && maxPrice != 0:
		preds = append(preds, query.InRange("properties.cost_per_night", minPrice, maxPrice))
	case minPrice != 0:
		preds = append(preds, query.AtLeast("properties.cost_per_night", minPrice))
	case maxPrice != 0:
		preds = append(preds, query.AtMost("properties.cost_per_night", maxPrice))
	}
	return preds
}

// SearchProperties returns reviewed properties matching opts, cheapest first.
// limit <= 0 means models.DefaultLimit.
func (db *DB) SearchProperties(ctx context.Context, opts models.PropertySearchOptions, limit int) ([]*models.PropertyListing, error) {
	started := time.Now()

	sqlText, args, err := propertySearch(opts, limit).Build()
	if err != nil {
		return nil, db.finish(opSearchProperties, started, err)
	}

	db.logger.Debug().Str("op", opSearchProperties).Str("sql", sqlText).Interface("args", args).Msg("search")

	listings := []*models.PropertyListing{}
	if err := db.SelectContext(ctx, &listings, sqlText, args...); err != nil {
		return nil, db.finish(opSearchProperties, started, err)
	}
	return listings, db.finish(opSearchProperties, started, nil)
}

// CreateProperty inserts the fourteen descriptive columns of property and
// fills it from the returned row.
func (db *DB) CreateProperty(ctx context.Context, property *models.Property) error {
	stmt := `INSERT INTO properties (
				owner_id, title, description, thumbnail_photo_url, cover_photo_url,
				cost_per_night, street, city, province, post_code, country,
				parking_spaces, number_of_bathrooms, number_of_bedrooms
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING ` + strings.Join(propertyFields, ", ")

	started := time.Now()
	err := db.QueryRowxContext(ctx, stmt,
		property.OwnerID,
		property.Title,
		property.Description,
		property.ThumbnailPhotoURL,
		property.CoverPhotoURL,
		property.CostPerNight,
		property.Street,
		property.City,
		property.Province,
		property.PostCode,
		property.Country,
		property.ParkingSpaces,
		property.NumberOfBathrooms,
		property.NumberOfBedrooms,
	).StructScan(property)
	return db.finish(opCreateProperty, started, err)
}
