//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/infra/memstore"
	"flight-booking/internal/pkg/clock"
	"flight-booking/internal/pkg/errs"
	"flight-booking/internal/usecase/commands"
	"flight-booking/internal/usecase/shared"
	"flight-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

type fakeRecorder struct {
	mu         sync.Mutex
	outcomes   map[string]int
	taken      int
	released   int
	collisions int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{outcomes: make(map[string]int)}
}

func (r *fakeRecorder) RecordOperation(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[operation+":"+outcome]++
}

func (r *fakeRecorder) RecordSeatsTaken(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.taken += n
}

func (r *fakeRecorder) RecordSeatsReleased(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released += n
}

func (r *fakeRecorder) RecordConfirmationCollision() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collisions++
}

type fixture struct {
	uow      shared.UnitOfWork
	cmds     commands.BookingCommands
	recorder *fakeRecorder
	clock    *clock.MockClock
}

func newFixture(t *testing.T, rnd inventory.IntNSource, flights ...*builder.FlightBuilder) *fixture {
	t.Helper()
	uow := memstore.NewUnitOfWork(memstore.NewStore())
	for _, fb := range flights {
		f := fb.MustBuildDomain()
		require.NoError(t, uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			return tx.Flights().Create(ctx, f)
		}))
	}

	rec := newFakeRecorder()
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC))
	cmds := commands.NewBookingCommands(
		uow,
		commands.NewConfirmationLedgerWithSource(8, rnd, rec),
		inventory.NewDefaultPicker(rnd),
		clk,
		rec,
		slog.New(slog.DiscardHandler),
	)
	return &fixture{uow: uow, cmds: cmds, recorder: rec, clock: clk}
}

// state loads the flight and the given bookings and checks the seat partition.
func (fx *fixture) state(t *testing.T, number flight.Number, confs ...string) (*flight.Flight, []*booking.Booking) {
	t.Helper()
	var (
		f        *flight.Flight
		bookings []*booking.Booking
	)
	require.NoError(t, fx.uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		if f, err = tx.Flights().LockByNumber(ctx, number); err != nil {
			return err
		}
		for _, c := range confs {
			b, err := tx.Bookings().FindByConfirmation(ctx, booking.ConfirmationNumber(c))
			if err != nil {
				return err
			}
			bookings = append(bookings, b)
		}
		return nil
	}))
	require.NoError(t, inventory.CheckPartition(f, bookings))
	return f, bookings
}

func createReq(seats int) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{FlightNumber: "FL1000", PassengerName: "John Smith", Seats: seats}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("takes contiguous seats and issues a confirmation number", func(t *testing.T) {
		fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder())

		res, err := fx.cmds.CreateBooking(ctx, createReq(3))
		require.NoError(t, err)

		assert.Equal(t, []string{"10A", "10B", "10C"}, res.SeatNumbers)
		assert.True(t, booking.IsValidConfirmationNumber(res.ConfirmationNumber))
		assert.Equal(t, "FL1000", res.FlightNumber)

		f, _ := fx.state(t, "FL1000", res.ConfirmationNumber)
		assert.Equal(t, 9, f.Available().Len())
		assert.Equal(t, 1, fx.recorder.outcomes["create:success"])
		assert.Equal(t, 3, fx.recorder.taken)
	})

	t.Run("insufficient seats leaves inventory untouched", func(t *testing.T) {
		fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder().With(func(b *builder.FlightBuilder) {
			b.SeatMap = []string{"10A", "10B"}
		}))

		_, err := fx.cmds.CreateBooking(ctx, createReq(5))
		require.Error(t, err)
		assert.True(t, errs.Is(err, inventory.ErrInsufficientSeats))
		assert.Contains(t, err.Error(), "only 2 seats are available for flight FL1000")

		f, _ := fx.state(t, "FL1000")
		assert.Equal(t, []string{"10A", "10B"}, f.Available().Slice())
		assert.Equal(t, 1, fx.recorder.outcomes["create:insufficient_seats"])
	})

	t.Run("sold out flight", func(t *testing.T) {
		fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder().WithAvailable())

		_, err := fx.cmds.CreateBooking(ctx, createReq(1))
		assert.True(t, errs.Is(err, inventory.ErrNoSeatsAvailable))
	})

	t.Run("unknown flight", func(t *testing.T) {
		fx := newFixture(t, fixedSource(0))

		_, err := fx.cmds.CreateBooking(ctx, createReq(1))
		assert.True(t, errs.Is(err, commands.ErrFlightNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, 1, fx.recorder.outcomes["create:not_found"])
	})

	t.Run("invalid input", func(t *testing.T) {
		fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder())

		cases := []commands.CreateBookingRequest{
			{FlightNumber: "FL10", PassengerName: "John Smith", Seats: 1},
			{FlightNumber: "FL1000", PassengerName: "J", Seats: 1},
			{FlightNumber: "FL1000", PassengerName: "John Smith", Seats: 0},
		}
		for _, req := range cases {
			_, err := fx.cmds.CreateBooking(ctx, req)
			assert.True(t, errs.Is(err, errs.ErrInvalidRequest), "request %+v", req)
		}
	})

	t.Run("confirmation numbers stay unique when random draws collide", func(t *testing.T) {
		fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder())

		first, err := fx.cmds.CreateBooking(ctx, createReq(1))
		require.NoError(t, err)
		second, err := fx.cmds.CreateBooking(ctx, createReq(1))
		require.NoError(t, err)

		assert.Equal(t, "CONF0000", first.ConfirmationNumber)
		assert.Equal(t, "CONF0001", second.ConfirmationNumber)
		assert.Equal(t, 8, fx.recorder.collisions)
		fx.state(t, "FL1000", first.ConfirmationNumber, second.ConfirmationNumber)
	})
}

func TestCreateBooking_LastSeatRace(t *testing.T) {
	fx := newFixture(t, inventory.GlobalSource{}, builder.NewFlightBuilder().With(func(b *builder.FlightBuilder) {
		b.SeatMap = []string{"12D"}
	}))

	const racers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  int
	)
	start := make(chan struct{})
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := fx.cmds.CreateBooking(context.Background(), createReq(1))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, res.ConfirmationNumber)
				return
			}
			if errs.Is(err, inventory.ErrNoSeatsAvailable) {
				losers++
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, racers-1, losers)

	f, bookings := fx.state(t, "FL1000", winners...)
	assert.True(t, f.Available().IsEmpty())
	assert.Equal(t, []string{"12D"}, bookings[0].Seats().Slice())
}

func TestAmendBooking(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, string) {
		t.Helper()
		fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder())
		res, err := fx.cmds.CreateBooking(ctx, createReq(2))
		require.NoError(t, err)
		require.Equal(t, []string{"10A", "10B"}, res.SeatNumbers)
		return fx, res.ConfirmationNumber
	}

	t.Run("swap a seat", func(t *testing.T) {
		fx, conf := setup(t)
		fx.clock.Add(time.Hour)

		res, err := fx.cmds.AmendBooking(ctx, conf, booking.SwapSeat{From: "10A", To: "12D"})
		require.NoError(t, err)
		assert.Equal(t, []string{"10B", "12D"}, res.SeatNumbers)
		assert.True(t, res.UpdatedAt.After(res.CreatedAt))

		f, _ := fx.state(t, "FL1000", conf)
		assert.True(t, f.Available().Contains("10A"))
		assert.False(t, f.Available().Contains("12D"))
	})

	t.Run("grow and shrink", func(t *testing.T) {
		fx, conf := setup(t)

		res, err := fx.cmds.AmendBooking(ctx, conf, booking.ResizeSeats{Count: 4})
		require.NoError(t, err)
		assert.Len(t, res.SeatNumbers, 4)
		fx.state(t, "FL1000", conf)

		res, err = fx.cmds.AmendBooking(ctx, conf, booking.ResizeSeats{Count: 1})
		require.NoError(t, err)
		assert.Len(t, res.SeatNumbers, 1)

		f, _ := fx.state(t, "FL1000", conf)
		assert.Equal(t, 11, f.Available().Len())
	})

	t.Run("same count is a no-op", func(t *testing.T) {
		fx, conf := setup(t)

		res, err := fx.cmds.AmendBooking(ctx, conf, booking.ResizeSeats{Count: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"10A", "10B"}, res.SeatNumbers)
		assert.Equal(t, 1, fx.recorder.outcomes["amend:success"])
	})

	t.Run("engine rejections leave state untouched", func(t *testing.T) {
		fx, conf := setup(t)

		_, err := fx.cmds.AmendBooking(ctx, conf, booking.SwapSeat{From: "11A", To: "12D"})
		assert.True(t, errs.Is(err, inventory.ErrSeatNotBooked))

		_, err = fx.cmds.AmendBooking(ctx, conf, booking.SwapSeat{From: "10A", To: "10B"})
		assert.True(t, errs.Is(err, inventory.ErrSeatNotAvailable))

		_, err = fx.cmds.AmendBooking(ctx, conf, booking.ResizeSeats{Count: 20})
		assert.True(t, errs.Is(err, inventory.ErrInsufficientSeats))

		_, err = fx.cmds.AmendBooking(ctx, conf, booking.ResizeSeats{Count: 0})
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))

		_, bookings := fx.state(t, "FL1000", conf)
		assert.Equal(t, []string{"10A", "10B"}, bookings[0].Seats().Slice())
	})

	t.Run("unknown booking", func(t *testing.T) {
		fx, _ := setup(t)

		_, err := fx.cmds.AmendBooking(ctx, "CONF9999", booking.ResizeSeats{Count: 1})
		assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		_, err = fx.cmds.AmendBooking(ctx, "BAD", booking.ResizeSeats{Count: 1})
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(t, fixedSource(0), builder.NewFlightBuilder())

	res, err := fx.cmds.CreateBooking(ctx, createReq(3))
	require.NoError(t, err)

	cancelled, err := fx.cmds.CancelBooking(ctx, res.ConfirmationNumber)
	require.NoError(t, err)
	assert.Equal(t, res.SeatNumbers, cancelled.ReleasedSeats)
	assert.Equal(t, 3, fx.recorder.released)

	f, _ := fx.state(t, "FL1000")
	assert.Equal(t, 12, f.Available().Len())

	_, err = fx.cmds.CancelBooking(ctx, res.ConfirmationNumber)
	assert.True(t, errs.Is(err, commands.ErrBookingNotFound))
}
