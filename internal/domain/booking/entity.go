package booking

import (
	"errors"
	"time"

	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"

	"github.com/google/uuid"
)

var ErrEmptySeats = errors.New("booking must hold at least one seat")

// Booking is active for as long as it exists; it always holds at least one seat.
type Booking struct {
	id           uuid.UUID
	confirmation ConfirmationNumber
	flightNumber flight.Number
	passenger    PassengerName
	seats        seat.Set
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(
	confirmation ConfirmationNumber,
	flightNumber flight.Number,
	passenger PassengerName,
	seats seat.Set,
	now time.Time,
) (*Booking, error) {
	if seats.IsEmpty() {
		return nil, ErrEmptySeats
	}

	return &Booking{
		id:           uuid.New(),
		confirmation: confirmation,
		flightNumber: flightNumber,
		passenger:    passenger,
		seats:        seats,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	confirmation ConfirmationNumber,
	flightNumber flight.Number,
	passenger PassengerName,
	seats seat.Set,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		confirmation: confirmation,
		flightNumber: flightNumber,
		passenger:    passenger,
		seats:        seats,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) ReplaceSeats(seats seat.Set, now time.Time) error {
	if seats.IsEmpty() {
		return ErrEmptySeats
	}
	b.seats = seats
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID                          { return b.id }
func (b *Booking) ConfirmationNumber() ConfirmationNumber { return b.confirmation }
func (b *Booking) FlightNumber() flight.Number            { return b.flightNumber }
func (b *Booking) PassengerName() PassengerName           { return b.passenger }
func (b *Booking) Seats() seat.Set                        { return b.seats }
func (b *Booking) CreatedAt() time.Time                   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time                   { return b.updatedAt }
