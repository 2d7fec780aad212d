package service

import (
	"context"
	"io"
	"testing"
	"time"

	"lightbnb/internal/events"
	"lightbnb/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReservationService(t *testing.T) {
	repo := new(mockRepo)
	bus := new(mockPublisher)
	logger := zerolog.New(io.Discard)
	s := NewReservationService(repo, bus, &logger)
	ctx := context.Background()

	t.Run("ListDefaultLimit", func(t *testing.T) {
		repo.On("ListReservationsForGuest", ctx, int64(1), models.DefaultLimit).
			Return([]*models.GuestReservation{}, nil).Once()

		got, err := s.ListForGuest(ctx, 1, -5)
		require.NoError(t, err)
		assert.NotNil(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("ListExplicitLimit", func(t *testing.T) {
		want := []*models.GuestReservation{{Reservation: models.Reservation{ID: 5}}}
		repo.On("ListReservationsForGuest", ctx, int64(1), 2).Return(want, nil).Once()

		got, err := s.ListForGuest(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("CreatePublishesEvent", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		r := &models.Reservation{GuestID: 2, PropertyID: 3, StartDate: start, EndDate: start.AddDate(0, 0, 3)}
		repo.On("CreateReservation", ctx, r).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Reservation).ID = 77
		}).Return(nil).Once()
		bus.On("PublishJSON", events.EventReservationCreated, events.ReservationEventPayload{
			ReservationID: 77, GuestID: 2, PropertyID: 3,
			StartDate: r.StartDate, EndDate: r.EndDate, Nights: 3,
		}).Return(nil).Once()

		require.NoError(t, s.CreateReservation(ctx, r))
		bus.AssertExpectations(t)
	})

	t.Run("CreateFailure", func(t *testing.T) {
		r := &models.Reservation{GuestID: 2}
		repo.On("CreateReservation", ctx, r).Return(assert.AnError).Once()

		assert.Error(t, s.CreateReservation(ctx, r))
		bus.AssertNumberOfCalls(t, "PublishJSON", 1)
	})
}
