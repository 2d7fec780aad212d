package service

import (
	"context"
	"errors"
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

func TestUserService(t *testing.T) {
	repo := new(mockRepo)
	bus := new(mockPublisher)
	logger := zerolog.New(io.Discard)
	s := NewUserService(repo, bus, &logger)
	ctx := context.Background()

	t.Run("GetUserByEmail", func(t *testing.T) {
		user := &models.User{ID: 1, Email: "a@x.com"}
		repo.On("GetUserByEmail", ctx, "a@x.com").Return(user, nil).Once()

		got, err := s.GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("GetUserByIDNotFound", func(t *testing.T) {
		repo.On("GetUserByID", ctx, int64(9)).Return(nil, database.ErrNotFound).Once()

		got, err := s.GetUserByID(ctx, 9)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("CreateUserPublishesEvent", func(t *testing.T) {
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.User).ID = 42
			}).
			Return(nil).Once()
		bus.On("PublishJSON", events.EventUserCreated, events.UserEventPayload{
			UserID: 42, Name: "A", Email: "a@x.com",
		}).Return(nil).Once()

		user, err := s.CreateUser(ctx, models.NewUserRequest{Name: "A", Email: "a@x.com", Password: "p"})
		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "p", user.Password)
		repo.AssertExpectations(t)
		bus.AssertExpectations(t)
	})

	t.Run("CreateUserConflict", func(t *testing.T) {
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(database.ErrConflict).Once()

		user, err := s.CreateUser(ctx, models.NewUserRequest{Email: "a@x.com"})
		assert.Nil(t, user)
		assert.ErrorIs(t, err, database.ErrConflict)
		bus.AssertNumberOfCalls(t, "PublishJSON", 1)
	})

	t.Run("EventFailureIsLogged", func(t *testing.T) {
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil).Once()
		bus.On("PublishJSON", events.EventUserCreated, mock.Anything).Return(errors.New("bus down")).Once()

		user, err := s.CreateUser(ctx, models.NewUserRequest{Name: "B", Email: "b@x.com"})
		require.NoError(t, err)
		assert.Equal(t, "b@x.com", user.Email)
	})
}

func TestUserServiceWithoutBus(t *testing.T) {
	repo := new(mockRepo)
	logger := zerolog.New(io.Discard)
	s := NewUserService(repo, nil, &logger)

	repo.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
	_, err := s.CreateUser(context.Background(), models.NewUserRequest{Email: "c@x.com"})
	assert.NoError(t, err)
}
