package queries

import (
	"time"

	"github.com/google/uuid"
)

type FlightView struct {
	FlightNumber   string
	FromCity       string
	ToCity         string
	DepartingTime  time.Time
	ArrivalTime    time.Time
	FlightDuration float64
	TotalSeats     int
	AvailableSeats []string
}

type BookingView struct {
	ID                 uuid.UUID
	ConfirmationNumber string
	FlightNumber       string
	PassengerName      string
	SeatNumbers        []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type FlightBookingsView struct {
	Flight   *FlightView
	Bookings []*BookingView
}

// Empty fields do not filter.
type FlightSearch struct {
	FromCity     string
	ToCity       string
	FlightNumber string
}

// Empty fields do not filter.
type BookingFilter struct {
	ConfirmationNumber string
	PassengerName      string
}
