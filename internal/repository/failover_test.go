package repository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func TestFailoverRateLimiter(t *testing.T) {
	primary := new(mockLimiter)
	fallback := new(mockLimiter)
	logger := zerolog.New(io.Discard)
	limiter := NewFailoverRateLimiter(primary, fallback, &logger)
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	t.Run("PrimarySuccess", func(t *testing.T) {
		primary.On("Allow", ctx, "a", 10, time.Minute).Return(false, nil).Once()

		allowed, err := limiter.Allow(ctx, "a", 10, time.Minute)
		assert.NoError(t, err)
		assert.False(t, allowed)
		assert.False(t, limiter.Degraded())
		primary.AssertExpectations(t)
	})

	t.Run("PrimaryFailFallbackSuccess", func(t *testing.T) {
		primary.On("Allow", ctx, "b", 10, time.Minute).Return(false, errors.New("fail")).Once()
		fallback.On("Allow", ctx, "b", 10, time.Minute).Return(true, nil).Once()

		allowed, err := limiter.Allow(ctx, "b", 10, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
		assert.True(t, limiter.Degraded())
		primary.AssertExpectations(t)
		fallback.AssertExpectations(t)
	})

	t.Run("AlreadyDown", func(t *testing.T) {
		now = now.Add(30 * time.Second)
		fallback.On("Allow", ctx, "c", 10, time.Minute).Return(true, nil).Once()

		allowed, err := limiter.Allow(ctx, "c", 10, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
		fallback.AssertExpectations(t)
		primary.AssertNotCalled(t, "Allow", ctx, "c", 10, time.Minute)
	})

	t.Run("RecoveryAttemptFail", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		primary.On("Allow", ctx, "d", 10, time.Minute).Return(false, errors.New("still fail")).Once()
		fallback.On("Allow", ctx, "d", 10, time.Minute).Return(true, nil).Once()

		allowed, err := limiter.Allow(ctx, "d", 10, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
		assert.True(t, limiter.Degraded())
		primary.AssertExpectations(t)
		fallback.AssertExpectations(t)
	})

	t.Run("RecoveryAttempt", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		primary.On("Allow", ctx, "e", 10, time.Minute).Return(true, nil).Once()

		allowed, err := limiter.Allow(ctx, "e", 10, time.Minute)
		assert.NoError(t, err)
		assert.True(t, allowed)
		assert.False(t, limiter.Degraded())
		primary.AssertExpectations(t)
	})
}

func TestFailoverWithMemoryFallback(t *testing.T) {
	primary := new(mockLimiter)
	primary.On("Allow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("connection refused"))

	logger := zerolog.New(io.Discard)
	limiter := NewFailoverRateLimiter(primary, NewMemoryRateLimiter(), &logger)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "client", 1, time.Hour)
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "client", 1, time.Hour)
	assert.NoError(t, err)
	assert.False(t, allowed)

	primary.AssertNumberOfCalls(t, "Allow", 1)
}
