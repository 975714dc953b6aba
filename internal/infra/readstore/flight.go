package readstore

import (
	"context"
	"errors"

	"flight-booking/internal/infra"
	"flight-booking/internal/infra/db"
	"flight-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const (
	flightColumns = `
SELECT flight_number, from_city, to_city, departing_time, arrival_time,
       flight_duration, cardinality(seat_map), available_seats
FROM flights`

	listFlightsSQL = flightColumns + `
ORDER BY flight_number`

	findFlightByNumberSQL = flightColumns + `
WHERE flight_number = $1`

	findFlightsByRouteSQL = flightColumns + `
WHERE ($1 = '' OR from_city = $1) AND ($2 = '' OR to_city = $2)
ORDER BY departing_time, flight_number`
)

type FlightReadStore struct {
	db db.DBTX
}

func NewFlightReadStore(dbtx db.DBTX) *FlightReadStore {
	return &FlightReadStore{db: dbtx}
}

func (s *FlightReadStore) List(ctx context.Context) ([]*queries.FlightView, error) {
	return s.collect(ctx, "failed to list flights", listFlightsSQL)
}

func (s *FlightReadStore) FindByNumber(ctx context.Context, number string) (*queries.FlightView, error) {
	rows, err := s.db.Query(ctx, findFlightByNumberSQL, number)
	if err != nil {
		return nil, classify("failed to find flight", err)
	}
	fv, err := pgx.CollectExactlyOneRow(rows, scanFlightView)
	if err != nil {
		return nil, classify("failed to find flight", err)
	}
	return fv, nil
}

func (s *FlightReadStore) FindByRoute(ctx context.Context, fromCity, toCity string) ([]*queries.FlightView, error) {
	return s.collect(ctx, "failed to search flights", findFlightsByRouteSQL, fromCity, toCity)
}

func (s *FlightReadStore) collect(ctx context.Context, msg, sql string, args ...any) ([]*queries.FlightView, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, classify(msg, err)
	}
	views, err := pgx.CollectRows(rows, scanFlightView)
	if err != nil {
		return nil, classify(msg, err)
	}
	if views == nil {
		views = []*queries.FlightView{}
	}
	return views, nil
}

func scanFlightView(row pgx.CollectableRow) (*queries.FlightView, error) {
	var fv queries.FlightView
	err := row.Scan(
		&fv.FlightNumber,
		&fv.FromCity,
		&fv.ToCity,
		&fv.DepartingTime,
		&fv.ArrivalTime,
		&fv.FlightDuration,
		&fv.TotalSeats,
		&fv.AvailableSeats,
	)
	if err != nil {
		return nil, err
	}
	if fv.AvailableSeats == nil {
		fv.AvailableSeats = []string{}
	}
	return &fv, nil
}

var _ queries.FlightReadStore = (*FlightReadStore)(nil)

func classify(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
