//go:build unit

package middleware_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"flight-booking/internal/handler/middleware"
	"flight-booking/internal/infra/idempotency"
	"flight-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	records map[string]*idempotency.Record
	claimed map[string]bool
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records: make(map[string]*idempotency.Record),
		claimed: make(map[string]bool),
	}
}

func (f *fakeStore) Load(_ context.Context, key string) (*idempotency.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return nil, errors.New("redis down")
	}
	if rec, ok := f.records[key]; ok {
		return rec, nil
	}
	if f.claimed[key] {
		return nil, idempotency.ErrInFlight
	}
	return nil, nil
}

func (f *fakeStore) Claim(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claimed[key] {
		return false, nil
	}
	f.claimed[key] = true
	return true, nil
}

func (f *fakeStore) Save(_ context.Context, key string, rec idempotency.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	body := append([]byte(nil), rec.Body...)
	rec.Body = body
	f.records[key] = &rec
	return nil
}

func (f *fakeStore) Release(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.claimed, key)
	return nil
}

func newRouter(store idempotency.Store, status *int, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	idem := middleware.Idempotency(store, slog.New(slog.DiscardHandler))
	r.POST("/api/bookings", idem, func(c *gin.Context) {
		*calls++
		c.JSON(*status, gin.H{"call": *calls})
	})
	return r
}

func TestIdempotency(t *testing.T) {
	key := map[string]string{middleware.IdempotencyKeyHeader: "abc-123"}

	t.Run("repeated key replays the first response", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		router := newRouter(newFakeStore(), &status, &calls)

		first := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		require.Equal(t, http.StatusCreated, first.Code)

		second := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
		assert.Equal(t, 1, calls)
	})

	t.Run("client errors are replayed too", func(t *testing.T) {
		status, calls := http.StatusConflict, 0
		router := newRouter(newFakeStore(), &status, &calls)

		httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		second := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		assert.Equal(t, http.StatusConflict, second.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("server errors release the key", func(t *testing.T) {
		status, calls := http.StatusInternalServerError, 0
		router := newRouter(newFakeStore(), &status, &calls)

		httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		status = http.StatusCreated
		second := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Empty(t, second.Header().Get(middleware.IdempotencyReplayedHeader))
		assert.Equal(t, 2, calls)
	})

	t.Run("same key with different parameters is rejected", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		router := newRouter(newFakeStore(), &status, &calls)

		first := httptest.PerformRequest(t, router, http.MethodPost,
			"/api/bookings?flight_number=FL1000&no_of_seats=1", nil, key)
		require.Equal(t, http.StatusCreated, first.Code)

		second := httptest.PerformRequest(t, router, http.MethodPost,
			"/api/bookings?flight_number=FL2000&no_of_seats=1", nil, key)
		httptest.AssertErrorResponse(t, second, http.StatusUnprocessableEntity, "different parameters")
		assert.Empty(t, second.Header().Get(middleware.IdempotencyReplayedHeader))
		assert.Equal(t, 1, calls)
	})

	t.Run("parameter order does not change the request identity", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		router := newRouter(newFakeStore(), &status, &calls)

		httptest.PerformRequest(t, router, http.MethodPost,
			"/api/bookings?flight_number=FL1000&no_of_seats=2", nil, key)
		second := httptest.PerformRequest(t, router, http.MethodPost,
			"/api/bookings?no_of_seats=2&flight_number=FL1000", nil, key)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayedHeader))
		assert.Equal(t, 1, calls)
	})

	t.Run("in-flight key is rejected", func(t *testing.T) {
		store := newFakeStore()
		_, err := store.Claim(context.Background(), "POST /api/bookings abc-123")
		require.NoError(t, err)

		status, calls := http.StatusCreated, 0
		router := newRouter(store, &status, &calls)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "still being processed")
		assert.Zero(t, calls)
	})

	t.Run("requests without a key always run", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		router := newRouter(newFakeStore(), &status, &calls)

		httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, nil)
		httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, nil)
		assert.Equal(t, 2, calls)
	})

	t.Run("store failure falls through to the handler", func(t *testing.T) {
		store := newFakeStore()
		store.failing = true
		status, calls := http.StatusCreated, 0
		router := newRouter(store, &status, &calls)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("noop store never replays", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		router := newRouter(idempotency.NoopStore{}, &status, &calls)

		httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		httptest.PerformRequest(t, router, http.MethodPost, "/api/bookings", nil, key)
		assert.Equal(t, 2, calls)
	})
}
