package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/infra"
	"flight-booking/internal/usecase/queries"
)

var (
	_ queries.FlightReadStore  = (*FlightReadStore)(nil)
	_ queries.BookingReadStore = (*BookingReadStore)(nil)
)

type FlightReadStore struct {
	store *Store
}

func NewFlightReadStore(store *Store) *FlightReadStore {
	return &FlightReadStore{store: store}
}

func (r *FlightReadStore) List(_ context.Context) ([]*queries.FlightView, error) {
	views := r.collect(func(flightRecord) bool { return true })
	slices.SortFunc(views, func(a, b *queries.FlightView) int {
		return cmp.Compare(a.FlightNumber, b.FlightNumber)
	})
	return views, nil
}

func (r *FlightReadStore) FindByNumber(_ context.Context, number string) (*queries.FlightView, error) {
	rec, ok := r.store.getFlight(flight.Number(strings.TrimSpace(number)))
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "flight "+number+" not found", nil)
	}
	return toFlightView(rec), nil
}

func (r *FlightReadStore) FindByRoute(_ context.Context, fromCity, toCity string) ([]*queries.FlightView, error) {
	views := r.collect(func(rec flightRecord) bool {
		return (fromCity == "" || rec.route.FromCity == fromCity) &&
			(toCity == "" || rec.route.ToCity == toCity)
	})
	slices.SortFunc(views, func(a, b *queries.FlightView) int {
		return cmp.Or(
			a.DepartingTime.Compare(b.DepartingTime),
			cmp.Compare(a.FlightNumber, b.FlightNumber),
		)
	})
	return views, nil
}

func (r *FlightReadStore) collect(keep func(flightRecord) bool) []*queries.FlightView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]*queries.FlightView, 0, len(r.store.flights))
	for _, rec := range r.store.flights {
		if keep(rec) {
			views = append(views, toFlightView(rec))
		}
	}
	return views
}

func toFlightView(rec flightRecord) *queries.FlightView {
	return &queries.FlightView{
		FlightNumber:   rec.number.String(),
		FromCity:       rec.route.FromCity,
		ToCity:         rec.route.ToCity,
		DepartingTime:  rec.route.DepartingTime,
		ArrivalTime:    rec.route.ArrivalTime,
		FlightDuration: rec.route.Duration(),
		TotalSeats:     rec.seatMap.Len(),
		AvailableSeats: rec.available.Slice(),
	}
}

type BookingReadStore struct {
	store *Store
}

func NewBookingReadStore(store *Store) *BookingReadStore {
	return &BookingReadStore{store: store}
}

func (r *BookingReadStore) List(_ context.Context) ([]*queries.BookingView, error) {
	return r.collect(func(bookingRecord) bool { return true }), nil
}

func (r *BookingReadStore) FindByConfirmation(_ context.Context, confirmation string) (*queries.BookingView, error) {
	rec, ok := r.store.getBooking(booking.ConfirmationNumber(strings.TrimSpace(confirmation)))
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking "+confirmation+" not found", nil)
	}
	return toBookingView(rec), nil
}

func (r *BookingReadStore) FindByPassenger(_ context.Context, passengerName string) ([]*queries.BookingView, error) {
	return r.collect(func(rec bookingRecord) bool {
		return rec.passenger.String() == passengerName
	}), nil
}

func (r *BookingReadStore) FindByFlight(_ context.Context, flightNumber string) ([]*queries.BookingView, error) {
	return r.collect(func(rec bookingRecord) bool {
		return rec.flightNumber.String() == flightNumber
	}), nil
}

// collect returns matching bookings oldest first.
func (r *BookingReadStore) collect(keep func(bookingRecord) bool) []*queries.BookingView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := make([]*queries.BookingView, 0)
	for _, rec := range r.store.bookings {
		if keep(rec) {
			views = append(views, toBookingView(rec))
		}
	}
	slices.SortFunc(views, func(a, b *queries.BookingView) int {
		return cmp.Or(
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.ConfirmationNumber, b.ConfirmationNumber),
		)
	})
	return views
}

func toBookingView(rec bookingRecord) *queries.BookingView {
	return &queries.BookingView{
		ID:                 rec.id,
		ConfirmationNumber: rec.confirmation.String(),
		FlightNumber:       rec.flightNumber.String(),
		PassengerName:      rec.passenger.String(),
		SeatNumbers:        rec.seats.Slice(),
		CreatedAt:          rec.createdAt,
		UpdatedAt:          rec.updatedAt,
	}
}
