package repository

import (
	"context"
	"sync/atomic"
	"time"

	"lightbnb/internal/domain"

	"github.com/rs/zerolog"
)

// recheckInterval is how long the failover limiter stays on the fallback
// before trying the primary again.
const recheckInterval = time.Minute

// FailoverRateLimiter uses primary until it returns an error, then serves
// from fallback and probes primary again every recheckInterval.
type FailoverRateLimiter struct {
	primary   domain.RateLimiter
	fallback  domain.RateLimiter
	logger    *zerolog.Logger
	isDown    atomic.Bool
	lastCheck atomic.Int64
	now       func() time.Time
}

func NewFailoverRateLimiter(primary, fallback domain.RateLimiter, logger *zerolog.Logger) *FailoverRateLimiter {
	return &FailoverRateLimiter{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
		now:      time.Now,
	}
}

func (r *FailoverRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if !r.isDown.Load() || r.shouldRecheck() {
		allowed, err := r.primary.Allow(ctx, key, limit, window)
		if err == nil {
			if r.isDown.CompareAndSwap(true, false) {
				r.logger.Info().Msg("primary rate limiter recovered")
			}
			return allowed, nil
		}
		if !r.isDown.Swap(true) {
			r.logger.Error().Err(err).Msg("primary rate limiter failed, falling back to memory")
		}
		r.lastCheck.Store(r.now().UnixNano())
	}

	return r.fallback.Allow(ctx, key, limit, window)
}

// Degraded reports whether requests are currently served by the fallback.
func (r *FailoverRateLimiter) Degraded() bool {
	return r.isDown.Load()
}

func (r *FailoverRateLimiter) shouldRecheck() bool {
	last := time.Unix(0, r.lastCheck.Load())
	return r.now().Sub(last) > recheckInterval
}
