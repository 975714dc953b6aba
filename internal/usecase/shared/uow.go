package shared

import (
	"context"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
)

type UnitOfWork interface {
	// Within runs fn as one atomic unit. Flights loaded through LockByNumber stay
	// locked until fn returns, so engine operations on one flight are serialized
	// while different flights proceed in parallel.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Flights() FlightRepository
	Bookings() BookingRepository
}

type FlightRepository interface {
	LockByNumber(ctx context.Context, number flight.Number) (*flight.Flight, error)
	// SaveAvailable persists the available seats if the stored version still
	// matches f.Version(); otherwise it fails with a conflict.
	SaveAvailable(ctx context.Context, f *flight.Flight) error
	Create(ctx context.Context, f *flight.Flight) error
	Count(ctx context.Context) (int, error)
}

type BookingRepository interface {
	FindByConfirmation(ctx context.Context, confirmation booking.ConfirmationNumber) (*booking.Booking, error)
	ConfirmationExists(ctx context.Context, confirmation booking.ConfirmationNumber) (bool, error)
	ListConfirmations(ctx context.Context) ([]booking.ConfirmationNumber, error)
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, confirmation booking.ConfirmationNumber) error
}
