package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
	"flight-booking/internal/infra"
	"flight-booking/internal/pkg/clock"
	"flight-booking/internal/pkg/errs"
	"flight-booking/internal/usecase/shared"
)

var cities = []string{
	"New York", "London", "Tokyo", "Sydney", "Dubai", "Los Angeles", "Hong Kong", "Chicago",
	"Madrid", "Seoul", "Paris", "Berlin", "Mumbai", "Toronto", "Singapore", "Rome",
	"Beijing", "Bangkok", "Mexico City", "Cape Town", "Cairo", "Moscow", "Istanbul", "Vienna",
	"Athens", "Lisbon", "Amsterdam", "Brussels", "Oslo", "Stockholm", "Helsinki", "Warsaw",
}

// maxNumberAttempts bounds redraws of a flight number that is already taken.
const maxNumberAttempts = 100

// Random is satisfied by *rand.Rand.
type Random interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

type Seeder struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	rnd    Random
	logger *slog.Logger
}

func NewSeeder(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *Seeder {
	return NewSeederWithRandom(uow, clk, globalRandom{}, logger)
}

func NewSeederWithRandom(uow shared.UnitOfWork, clk clock.Clock, rnd Random, logger *slog.Logger) *Seeder {
	return &Seeder{uow: uow, clock: clk, rnd: rnd, logger: logger}
}

// SeatMap is the layout every generated flight gets: rows 10-19, columns A-D.
func SeatMap() seat.Set {
	ids := make([]string, 0, 40)
	for row := 10; row <= 19; row++ {
		for _, col := range "ABCD" {
			ids = append(ids, fmt.Sprintf("%d%c", row, col))
		}
	}
	return seat.NewSet(ids...)
}

// SeedFlights tops the store up to n flights and reports how many it added.
func (s *Seeder) SeedFlights(ctx context.Context, n int) (int, error) {
	var existing int
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		existing, err = tx.Flights().Count(ctx)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to count flights")
	}
	if existing >= n {
		s.logger.Info("store already has enough flights", "existing", existing, "requested", n)
		return 0, nil
	}

	added := 0
	for added < n-existing {
		if err := s.createOne(ctx); err != nil {
			return added, err
		}
		added++
	}

	s.logger.Info("seeded flights", "added", added, "total", existing+added)
	return added, nil
}

func (s *Seeder) createOne(ctx context.Context) error {
	for range maxNumberAttempts {
		f, err := s.generate()
		if err != nil {
			return err
		}
		err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Flights().Create(ctx, f)
		})
		if infra.IsKind(err, infra.KindDuplicateKey) {
			continue
		}
		if err != nil {
			return errs.Wrapf(err, "failed to create flight %s", f.Number())
		}
		return nil
	}
	return errs.Newf("no free flight number after %d attempts", maxNumberAttempts)
}

func (s *Seeder) generate() (*flight.Flight, error) {
	number, err := flight.NewNumber(fmt.Sprintf("FL%04d", 1000+s.rnd.IntN(9000)))
	if err != nil {
		return nil, err
	}

	from := s.rnd.IntN(len(cities))
	to := s.rnd.IntN(len(cities) - 1)
	if to >= from {
		to++
	}

	departing := s.clock.Now().UTC().Truncate(time.Second).
		Add(time.Duration(1+s.rnd.IntN(72)) * time.Hour)
	hours := float64(1+s.rnd.IntN(24)) + s.rnd.Float64()
	arrival := departing.Add(time.Duration(hours * float64(time.Hour))).Truncate(time.Second)

	return flight.NewFlight(number, flight.Route{
		FromCity:      cities[from],
		ToCity:        cities[to],
		DepartingTime: departing,
		ArrivalTime:   arrival,
	}, SeatMap())
}
