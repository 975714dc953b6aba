package readstore

import (
	"context"

	"flight-booking/internal/infra/db"
	"flight-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	bookingColumns = `
SELECT id, confirmation_number, flight_number, passenger_name, seat_numbers, created_at, updated_at
FROM bookings`

	listBookingsSQL = bookingColumns + `
ORDER BY created_at, confirmation_number`

	findBookingByConfirmationSQL = bookingColumns + `
WHERE confirmation_number = $1`

	findBookingsByPassengerSQL = bookingColumns + `
WHERE passenger_name = $1
ORDER BY created_at, confirmation_number`

	findBookingsByFlightSQL = bookingColumns + `
WHERE flight_number = $1
ORDER BY created_at, confirmation_number`
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) List(ctx context.Context) ([]*queries.BookingView, error) {
	return s.collect(ctx, "failed to list bookings", listBookingsSQL)
}

func (s *BookingReadStore) FindByConfirmation(ctx context.Context, confirmation string) (*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, findBookingByConfirmationSQL, confirmation)
	if err != nil {
		return nil, classify("failed to find booking", err)
	}
	bv, err := pgx.CollectExactlyOneRow(rows, scanBookingView)
	if err != nil {
		return nil, classify("failed to find booking", err)
	}
	return bv, nil
}

func (s *BookingReadStore) FindByPassenger(ctx context.Context, passengerName string) ([]*queries.BookingView, error) {
	return s.collect(ctx, "failed to find bookings by passenger", findBookingsByPassengerSQL, passengerName)
}

func (s *BookingReadStore) FindByFlight(ctx context.Context, flightNumber string) ([]*queries.BookingView, error) {
	return s.collect(ctx, "failed to find bookings by flight", findBookingsByFlightSQL, flightNumber)
}

func (s *BookingReadStore) collect(ctx context.Context, msg, sql string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(msg, err)
	}
	views, err := pgx.CollectRows(rows, scanBookingView)
	if err != nil {
		return nil, classify(msg, err)
	}
	if views == nil {
		views = []*queries.BookingView{}
	}
	return views, nil
}

func scanBookingView(row pgx.CollectableRow) (*queries.BookingView, error) {
	var bv queries.BookingView
	err := row.Scan(
		&bv.ID,
		&bv.ConfirmationNumber,
		&bv.FlightNumber,
		&bv.PassengerName,
		&bv.SeatNumbers,
		&bv.CreatedAt,
		&bv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bv, nil
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)
