//go:build unit || e2e

package builder

import (
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
)

type BookingBuilder struct {
	ConfirmationNumber string
	FlightNumber       string
	PassengerName      string
	Seats              []string
	CreatedAt          time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ConfirmationNumber: "CONF1234",
		FlightNumber:       "FL1000",
		PassengerName:      "John Smith",
		Seats:              []string{"10A"},
		CreatedAt:          time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSeats(ids ...string) *BookingBuilder {
	b.Seats = ids
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	confirmation, err := booking.NewConfirmationNumber(b.ConfirmationNumber)
	if err != nil {
		return nil, err
	}
	number, err := flight.NewNumber(b.FlightNumber)
	if err != nil {
		return nil, err
	}
	passenger, err := booking.NewPassengerName(b.PassengerName)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(confirmation, number, passenger, seat.NewSet(b.Seats...), b.CreatedAt)
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}
