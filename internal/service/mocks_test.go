package service

import (
	"context"

	"lightbnb/internal/models"

	"github.com/stretchr/testify/mock"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockRepo) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockRepo) SearchProperties(ctx context.Context, opts models.PropertySearchOptions, limit int) ([]*models.PropertyListing, error) {
	args := m.Called(ctx, opts, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PropertyListing), args.Error(1)
}

func (m *mockRepo) CreateProperty(ctx context.Context, property *models.Property) error {
	return m.Called(ctx, property).Error(0)
}

func (m *mockRepo) ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error) {
	args := m.Called(ctx, guestID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GuestReservation), args.Error(1)
}

func (m *mockRepo) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishJSON(eventType string, payload interface{}) error {
	return m.Called(eventType, payload).Error(0)
}
