package database

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"lightbnb/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentCreateUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &models.User{Name: "u", Email: fmt.Sprintf("u%d@x.com", i), Password: "p"}
			if err := db.CreateUser(ctx, u); err != nil {
				errs <- err
				return
			}
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(errs)
	close(ids)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestConcurrentDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	created, conflicts := 0, 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.CreateUser(ctx, &models.User{Name: "same", Email: "same@x.com", Password: "p"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
}
