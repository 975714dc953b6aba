package request

import "flight-booking/internal/usecase/queries"

type SearchFlightsRequest struct {
	FromCity     string `form:"from_city" binding:"omitempty,max=100"`
	ToCity       string `form:"to_city" binding:"omitempty,max=100"`
	FlightNumber string `form:"flight_number" binding:"omitempty,flight_number"`
}

func (r SearchFlightsRequest) ToQuery() queries.FlightSearch {
	return queries.FlightSearch{
		FromCity:     r.FromCity,
		ToCity:       r.ToCity,
		FlightNumber: r.FlightNumber,
	}
}

type FlightURI struct {
	FlightNumber string `uri:"flight_number" binding:"required,flight_number"`
}
