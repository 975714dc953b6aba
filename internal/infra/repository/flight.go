package repository

import (
	"context"
	"time"

	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
	"flight-booking/internal/infra"
	"flight-booking/internal/infra/db"
)

const (
	lockFlightSQL = `
SELECT flight_number, from_city, to_city, departing_time, arrival_time,
       seat_map, available_seats, version
FROM flights
WHERE flight_number = $1
FOR UPDATE`

	saveAvailableSQL = `
UPDATE flights
SET available_seats = $2, version = version + 1
WHERE flight_number = $1 AND version = $3`

	createFlightSQL = `
INSERT INTO flights (flight_number, from_city, to_city, departing_time, arrival_time,
                     flight_duration, seat_map, available_seats)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	countFlightsSQL = `SELECT count(*) FROM flights`
)

type FlightRepository struct {
	db db.DBTX
}

func NewFlightRepository(dbtx db.DBTX) *FlightRepository {
	return &FlightRepository{db: dbtx}
}

// LockByNumber takes a row lock held until the surrounding transaction ends.
func (r *FlightRepository) LockByNumber(ctx context.Context, number flight.Number) (*flight.Flight, error) {
	var (
		flightNumber, fromCity, toCity string
		departing, arrival             time.Time
		seatMap, available             []string
		version                        int64
	)
	err := r.db.QueryRow(ctx, lockFlightSQL, number.String()).Scan(
		&flightNumber, &fromCity, &toCity, &departing, &arrival, &seatMap, &available, &version,
	)
	if err != nil {
		return nil, classify("failed to lock flight", err)
	}

	route := flight.Route{
		FromCity:      fromCity,
		ToCity:        toCity,
		DepartingTime: departing,
		ArrivalTime:   arrival,
	}
	return flight.ReconstructFlight(flight.Number(flightNumber), route, seat.NewSet(seatMap...), seat.NewSet(available...), version), nil
}

func (r *FlightRepository) SaveAvailable(ctx context.Context, f *flight.Flight) error {
	tag, err := r.db.Exec(ctx, saveAvailableSQL, f.Number().String(), f.Available().Slice(), f.Version())
	if err != nil {
		return classify("failed to save available seats", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "flight version changed since it was read", nil)
	}
	return nil
}

func (r *FlightRepository) Create(ctx context.Context, f *flight.Flight) error {
	route := f.Route()
	_, err := r.db.Exec(ctx, createFlightSQL,
		f.Number().String(),
		route.FromCity,
		route.ToCity,
		route.DepartingTime,
		route.ArrivalTime,
		route.Duration(),
		f.SeatMap().Slice(),
		f.Available().Slice(),
	)
	if err != nil {
		return classify("failed to create flight", err)
	}
	return nil
}

func (r *FlightRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, countFlightsSQL).Scan(&n); err != nil {
		return 0, classify("failed to count flights", err)
	}
	return n, nil
}
