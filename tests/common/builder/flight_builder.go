//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
)

type FlightBuilder struct {
	Number        string
	FromCity      string
	ToCity        string
	DepartingTime time.Time
	ArrivalTime   time.Time
	SeatMap       []string
	Available     []string
	Version       int64
}

func NewFlightBuilder() *FlightBuilder {
	departing := time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC)
	return &FlightBuilder{
		Number:        "FL1000",
		FromCity:      "Berlin",
		ToCity:        "Paris",
		DepartingTime: departing,
		ArrivalTime:   departing.Add(2 * time.Hour),
		SeatMap:       Seats(10, 12, "ABCD"),
	}
}

func (f *FlightBuilder) With(mutate func(*FlightBuilder)) *FlightBuilder {
	mutate(f)
	return f
}

// WithAvailable overrides the available set; by default every seat in SeatMap is free.
func (f *FlightBuilder) WithAvailable(ids ...string) *FlightBuilder {
	f.Available = append([]string{}, ids...)
	return f
}

func (f *FlightBuilder) BuildDomain() (*flight.Flight, error) {
	number, err := flight.NewNumber(f.Number)
	if err != nil {
		return nil, err
	}
	route := flight.Route{
		FromCity:      f.FromCity,
		ToCity:        f.ToCity,
		DepartingTime: f.DepartingTime,
		ArrivalTime:   f.ArrivalTime,
	}
	fl, err := flight.NewFlight(number, route, seat.NewSet(f.SeatMap...))
	if err != nil {
		return nil, err
	}
	if f.Available == nil {
		return fl, nil
	}
	return flight.ReconstructFlight(number, route, fl.SeatMap(), seat.NewSet(f.Available...), f.Version), nil
}

func (f *FlightBuilder) MustBuildDomain() *flight.Flight {
	fl, err := f.BuildDomain()
	if err != nil {
		panic(err)
	}
	return fl
}

// Seats lists row+column identifiers for rows [fromRow, toRow].
func Seats(fromRow, toRow int, columns string) []string {
	var out []string
	for row := fromRow; row <= toRow; row++ {
		for _, col := range columns {
			out = append(out, strconv.Itoa(row)+string(col))
		}
	}
	return out
}
