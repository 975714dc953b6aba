//go:build unit

package seed_test

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"flight-booking/internal/infra/memstore"
	"flight-booking/internal/infra/seed"
	"flight-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFlights(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)
	store := memstore.NewStore()
	seeder := seed.NewSeederWithRandom(
		memstore.NewUnitOfWork(store),
		clock.NewMockClock(now),
		rand.New(rand.NewPCG(1, 2)),
		slog.New(slog.DiscardHandler),
	)

	added, err := seeder.SeedFlights(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, added)

	views, err := memstore.NewFlightReadStore(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 25)

	seen := make(map[string]bool)
	for _, v := range views {
		assert.Regexp(t, `^FL[0-9]{4}$`, v.FlightNumber)
		assert.False(t, seen[v.FlightNumber], "duplicate %s", v.FlightNumber)
		seen[v.FlightNumber] = true

		assert.NotEqual(t, v.FromCity, v.ToCity)
		assert.Equal(t, 40, v.TotalSeats)
		assert.Len(t, v.AvailableSeats, 40)

		ahead := v.DepartingTime.Sub(now)
		assert.GreaterOrEqual(t, ahead, time.Hour)
		assert.LessOrEqual(t, ahead, 72*time.Hour)
		assert.GreaterOrEqual(t, v.FlightDuration, 1.0)
		assert.Less(t, v.FlightDuration, 25.0)
	}

	t.Run("tops up to the requested count", func(t *testing.T) {
		added, err := seeder.SeedFlights(ctx, 30)
		require.NoError(t, err)
		assert.Equal(t, 5, added)
	})

	t.Run("no-op when enough flights exist", func(t *testing.T) {
		added, err := seeder.SeedFlights(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, added)
	})
}

func TestSeatMap(t *testing.T) {
	m := seed.SeatMap()
	assert.Equal(t, 40, m.Len())
	assert.True(t, m.Contains("10A"))
	assert.True(t, m.Contains("19D"))
	assert.False(t, m.Contains("20A"))
}
