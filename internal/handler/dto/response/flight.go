package response

import (
	"time"

	"flight-booking/internal/usecase/queries"
)

type FlightResponse struct {
	FlightNumber   string    `json:"flight_number"`
	FromCity       string    `json:"departure_city"`
	ToCity         string    `json:"arrival_city"`
	DepartingTime  time.Time `json:"departing_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	FlightDuration float64   `json:"flight_duration"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats []string  `json:"available_seats"`
}

func FromFlightView(v *queries.FlightView) *FlightResponse {
	resp := &FlightResponse{}
	mustCopy(resp, v)
	return resp
}

func FromFlightViews(views []*queries.FlightView) []*FlightResponse {
	out := make([]*FlightResponse, len(views))
	for i, v := range views {
		out[i] = FromFlightView(v)
	}
	return out
}

type FlightBookingsResponse struct {
	Flight   *FlightResponse    `json:"flight"`
	Bookings []*BookingResponse `json:"bookings"`
}

func FromFlightBookingsView(v *queries.FlightBookingsView) *FlightBookingsResponse {
	return &FlightBookingsResponse{
		Flight:   FromFlightView(v.Flight),
		Bookings: FromBookingViews(v.Bookings),
	}
}
