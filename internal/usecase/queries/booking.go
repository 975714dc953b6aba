package queries

import (
	"context"
	"strings"

	"flight-booking/internal/infra"
)

type BookingReadStore interface {
	List(ctx context.Context) ([]*BookingView, error)
	FindByConfirmation(ctx context.Context, confirmation string) (*BookingView, error)
	FindByPassenger(ctx context.Context, passengerName string) ([]*BookingView, error)
	FindByFlight(ctx context.Context, flightNumber string) ([]*BookingView, error)
}

type BookingQueries interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	SearchBookingsByFlight(ctx context.Context, flightNumber string) (*FlightBookingsView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	flights  FlightQueries
}

func NewBookingQueries(bookings BookingReadStore, flights FlightQueries) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, flights: flights}
}

// ListBookings filters by confirmation number first, then by passenger name;
// with neither it returns every booking. An unknown confirmation number
// yields an empty list rather than an error.
func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	if conf := strings.TrimSpace(filter.ConfirmationNumber); conf != "" {
		bv, err := q.bookings.FindByConfirmation(ctx, conf)
		if infra.IsKind(err, infra.KindNotFound) {
			return []*BookingView{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []*BookingView{bv}, nil
	}
	if name := strings.TrimSpace(filter.PassengerName); name != "" {
		return q.bookings.FindByPassenger(ctx, name)
	}
	return q.bookings.List(ctx)
}

func (q *bookingQueriesImpl) SearchBookingsByFlight(ctx context.Context, flightNumber string) (*FlightBookingsView, error) {
	fv, err := q.flights.GetFlight(ctx, flightNumber)
	if err != nil {
		return nil, err
	}
	bookings, err := q.bookings.FindByFlight(ctx, fv.FlightNumber)
	if err != nil {
		return nil, err
	}
	return &FlightBookingsView{Flight: fv, Bookings: bookings}, nil
}
