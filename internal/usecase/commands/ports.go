package commands

import (
	"time"

	"flight-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Recorder receives engine outcomes; *metrics.Metrics implements it.
type Recorder interface {
	RecordOperation(operation, outcome string)
	RecordSeatsTaken(n int)
	RecordSeatsReleased(n int)
	RecordConfirmationCollision()
}

// Write-side result keeps handlers independent of the domain aggregate.
type BookingResult struct {
	ID                 uuid.UUID
	ConfirmationNumber string
	FlightNumber       string
	PassengerName      string
	SeatNumbers        []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newBookingResult(b *booking.Booking) *BookingResult {
	return &BookingResult{
		ID:                 b.ID(),
		ConfirmationNumber: b.ConfirmationNumber().String(),
		FlightNumber:       b.FlightNumber().String(),
		PassengerName:      b.PassengerName().String(),
		SeatNumbers:        b.Seats().Slice(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

type CancelResult struct {
	ConfirmationNumber string
	FlightNumber       string
	ReleasedSeats      []string
}
