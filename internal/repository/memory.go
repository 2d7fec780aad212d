package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter keeps a token bucket per key in process memory. A bucket
// holds limit tokens and refills at limit per window.
type MemoryRateLimiter struct {
	limiters sync.Map
	now      func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{now: time.Now}
}

func (m *MemoryRateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}
	return m.getLimiter(key, limit, window).AllowN(m.now(), 1), nil
}

func (m *MemoryRateLimiter) getLimiter(key string, limit int, window time.Duration) *rate.Limiter {
	if v, ok := m.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	every := rate.Inf
	if window > 0 {
		every = rate.Every(window / time.Duration(limit))
	}

	lim := rate.NewLimiter(every, limit)
	actual, loaded := m.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}
