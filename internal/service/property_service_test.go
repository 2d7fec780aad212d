package service

import (
	"context"
	"io"
	"testing"

	"lightbnb/internal/database"
	"lightbnb/internal/events"
	"lightbnb/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPropertyService(t *testing.T) {
	repo := new(mockRepo)
	bus := new(mockPublisher)
	logger := zerolog.New(io.Discard)
	s := NewPropertyService(repo, bus, &logger)
	ctx := context.Background()

	opts := models.PropertySearchOptions{City: "Vancouver"}

	t.Run("SearchDefaultLimit", func(t *testing.T) {
		listings := []*models.PropertyListing{{Property: models.Property{ID: 1}}}
		repo.On("SearchProperties", ctx, opts, models.DefaultLimit).Return(listings, nil).Once()

		got, err := s.SearchProperties(ctx, opts, 0)
		require.NoError(t, err)
		assert.Equal(t, listings, got)
		repo.AssertExpectations(t)
	})

	t.Run("SearchExplicitLimit", func(t *testing.T) {
		repo.On("SearchProperties", ctx, opts, 3).Return([]*models.PropertyListing{}, nil).Once()

		got, err := s.SearchProperties(ctx, opts, 3)
		require.NoError(t, err)
		assert.Empty(t, got)
		repo.AssertExpectations(t)
	})

	t.Run("SearchFailure", func(t *testing.T) {
		failure := &database.QueryError{Op: "search_properties", Err: assert.AnError}
		repo.On("SearchProperties", ctx, opts, 5).Return(nil, failure).Once()

		_, err := s.SearchProperties(ctx, opts, 5)
		assert.True(t, database.IsQueryFailure(err))
	})

	t.Run("CreatePublishesEvent", func(t *testing.T) {
		p := &models.Property{OwnerID: 3, Title: "Cabin", City: "Whistler", CostPerNight: 100}
		repo.On("CreateProperty", ctx, p).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Property).ID = 11
		}).Return(nil).Once()
		bus.On("PublishJSON", events.EventPropertyCreated, events.PropertyEventPayload{
			PropertyID: 11, OwnerID: 3, Title: "Cabin", City: "Whistler", CostPerNight: 100,
		}).Return(nil).Once()

		require.NoError(t, s.CreateProperty(ctx, p))
		assert.Equal(t, int64(11), p.ID)
		bus.AssertExpectations(t)
	})

	t.Run("CreateFailureSkipsEvent", func(t *testing.T) {
		p := &models.Property{OwnerID: 999}
		repo.On("CreateProperty", ctx, p).Return(assert.AnError).Once()

		assert.ErrorIs(t, s.CreateProperty(ctx, p), assert.AnError)
		bus.AssertNumberOfCalls(t, "PublishJSON", 1)
	})
}
