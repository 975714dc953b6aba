package request

import (
	"flight-booking/internal/domain/booking"
	"flight-booking/internal/usecase/commands"
	"flight-booking/internal/usecase/queries"
)

type CreateBookingRequest struct {
	FlightNumber  string `form:"flight_number" binding:"required,flight_number"`
	PassengerName string `form:"passenger_name" binding:"required,passenger_name"`
	NoOfSeats     int    `form:"no_of_seats" binding:"required,min=1,max=10"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		FlightNumber:  r.FlightNumber,
		PassengerName: r.PassengerName,
		Seats:         r.NoOfSeats,
	}
}

// AmendBookingRequest takes either no_of_seats or the seat_number_from/to pair.
// Empty seat parameters count as absent; ToDomain validates the seat ids.
type AmendBookingRequest struct {
	NoOfSeats      *int    `form:"no_of_seats" binding:"omitempty,min=1,max=10"`
	SeatNumberFrom *string `form:"seat_number_from"`
	SeatNumberTo   *string `form:"seat_number_to"`
}

func (r AmendBookingRequest) ToDomain() (booking.AmendRequest, error) {
	return booking.ParseAmendRequest(r.NoOfSeats, r.SeatNumberFrom, r.SeatNumberTo)
}

type ConfirmationURI struct {
	ConfirmationNumber string `uri:"confirmation_number" binding:"required,confirmation_number"`
}

type ListBookingsRequest struct {
	ConfirmationNumber string `form:"confirmation_number" binding:"omitempty,confirmation_number"`
	PassengerName      string `form:"passenger_name" binding:"omitempty,max=50"`
}

func (r ListBookingsRequest) ToQuery() queries.BookingFilter {
	return queries.BookingFilter{
		ConfirmationNumber: r.ConfirmationNumber,
		PassengerName:      r.PassengerName,
	}
}
