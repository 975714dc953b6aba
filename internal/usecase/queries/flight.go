package queries

import (
	"context"
	"strings"

	"flight-booking/internal/infra"
	"flight-booking/internal/pkg/errs"
)

var ErrFlightNotFound = errs.New("flight not found")

type FlightReadStore interface {
	List(ctx context.Context) ([]*FlightView, error)
	FindByNumber(ctx context.Context, number string) (*FlightView, error)
	// FindByRoute matches on whichever of from/to is non-empty, ordered by departure.
	FindByRoute(ctx context.Context, fromCity, toCity string) ([]*FlightView, error)
}

type FlightQueries interface {
	ListFlights(ctx context.Context) ([]*FlightView, error)
	SearchFlights(ctx context.Context, search FlightSearch) ([]*FlightView, error)
	GetFlight(ctx context.Context, number string) (*FlightView, error)
}

type flightQueriesImpl struct {
	flights FlightReadStore
}

func NewFlightQueries(flights FlightReadStore) FlightQueries {
	return &flightQueriesImpl{flights: flights}
}

func (q *flightQueriesImpl) ListFlights(ctx context.Context) ([]*FlightView, error) {
	return q.flights.List(ctx)
}

// SearchFlights prefers an exact flight number over the route filters.
func (q *flightQueriesImpl) SearchFlights(ctx context.Context, search FlightSearch) ([]*FlightView, error) {
	if number := strings.TrimSpace(search.FlightNumber); number != "" {
		fv, err := q.GetFlight(ctx, number)
		if errs.Is(err, ErrFlightNotFound) {
			return []*FlightView{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []*FlightView{fv}, nil
	}

	from, to := strings.TrimSpace(search.FromCity), strings.TrimSpace(search.ToCity)
	if from == "" && to == "" {
		return q.flights.List(ctx)
	}
	return q.flights.FindByRoute(ctx, from, to)
}

func (q *flightQueriesImpl) GetFlight(ctx context.Context, number string) (*FlightView, error) {
	fv, err := q.flights.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.Mark(err, ErrFlightNotFound), errs.ErrNotFound)
		}
		return nil, err
	}
	return fv, nil
}
