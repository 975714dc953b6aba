//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/tests/common/builder"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestFlight(t *testing.T, db DBLike, fb *builder.FlightBuilder) *flight.Flight {
	t.Helper()

	f := fb.MustBuildDomain()
	r := f.Route()
	_, err := db.Exec(context.Background(), `
		INSERT INTO flights (flight_number, from_city, to_city, departing_time, arrival_time,
		                     flight_duration, seat_map, available_seats, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.Number().String(), r.FromCity, r.ToCity, r.DepartingTime, r.ArrivalTime,
		r.Duration(), f.SeatMap().Slice(), f.Available().Slice(), f.Version())
	require.NoError(t, err)

	return f
}

// CreateTestBooking inserts the booking only; callers keep the flight's
// available seats consistent through the FlightBuilder.
func CreateTestBooking(t *testing.T, db DBLike, bb *builder.BookingBuilder) *booking.Booking {
	t.Helper()

	b := bb.MustBuildDomain()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, confirmation_number, flight_number, passenger_name,
		                      seat_numbers, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.ConfirmationNumber().String(), b.FlightNumber().String(), b.PassengerName().String(),
		b.Seats().Slice(), b.CreatedAt(), b.UpdatedAt())
	require.NoError(t, err)

	return b
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
