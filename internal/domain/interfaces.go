package domain

import (
	"context"
	"time"

	"lightbnb/internal/models"
)

// Repository is the query layer consumed by the services.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	SearchProperties(ctx context.Context, opts models.PropertySearchOptions, limit int) ([]*models.PropertyListing, error)
	CreateProperty(ctx context.Context, property *models.Property) error
	ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error)
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

type UserService interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, req models.NewUserRequest) (*models.User, error)
}

type PropertyService interface {
	SearchProperties(ctx context.Context, opts models.PropertySearchOptions, limit int) ([]*models.PropertyListing, error)
	CreateProperty(ctx context.Context, property *models.Property) error
}

type ReservationService interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error)
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
}
