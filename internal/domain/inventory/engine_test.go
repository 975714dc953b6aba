//go:build unit

package inventory_test

import (
	"errors"
	"testing"
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/domain/seat"
	"flight-booking/internal/pkg/errs"
	"flight-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

var now = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

func allocator(n booking.ConfirmationNumber) inventory.ConfirmationAllocator {
	return func() (booking.ConfirmationNumber, error) { return n, nil }
}

func passenger(t *testing.T) booking.PassengerName {
	t.Helper()
	p, err := booking.NewPassengerName("John Smith")
	require.NoError(t, err)
	return p
}

func TestBook(t *testing.T) {
	picker := inventory.NewDefaultPicker(fixedSource(0))

	t.Run("three seats out of twelve", func(t *testing.T) {
		f := builder.NewFlightBuilder().MustBuildDomain()
		require.Equal(t, 12, f.Available().Len())

		b, err := inventory.Book(f, passenger(t), 3, picker, allocator("CONF0001"), now)
		require.NoError(t, err)

		assert.Equal(t, []string{"10A", "10B", "10C"}, b.Seats().Slice())
		assert.Equal(t, 9, f.Available().Len())
		assert.True(t, f.Available().Intersect(b.Seats()).IsEmpty())
		assert.NoError(t, inventory.CheckPartition(f, []*booking.Booking{b}))
	})

	t.Run("single seat is picked through the random source", func(t *testing.T) {
		f := builder.NewFlightBuilder().MustBuildDomain()
		p := inventory.NewDefaultPicker(fixedSource(5))

		b, err := inventory.Book(f, passenger(t), 1, p, allocator("CONF0002"), now)
		require.NoError(t, err)

		assert.Equal(t, []string{"11B"}, b.Seats().Slice())
		assert.False(t, f.Available().Contains("11B"))
	})

	t.Run("insufficient seats leaves flight unchanged", func(t *testing.T) {
		f := builder.NewFlightBuilder().WithAvailable("10A", "10B").MustBuildDomain()
		before := f.Available()

		_, err := inventory.Book(f, passenger(t), 5, picker, allocator("CONF0003"), now)

		require.Error(t, err)
		assert.True(t, errs.Is(err, inventory.ErrInsufficientSeats))
		assert.Contains(t, err.Error(), "only 2 seats are available for flight FL1000")
		assert.True(t, before.Equal(f.Available()))
	})

	t.Run("no seats available", func(t *testing.T) {
		f := builder.NewFlightBuilder().WithAvailable().MustBuildDomain()

		_, err := inventory.Book(f, passenger(t), 1, picker, allocator("CONF0004"), now)
		assert.True(t, errs.Is(err, inventory.ErrNoSeatsAvailable))
	})

	t.Run("allocation failure leaves flight unchanged", func(t *testing.T) {
		f := builder.NewFlightBuilder().MustBuildDomain()
		boom := errors.New("pool exhausted")

		_, err := inventory.Book(f, passenger(t), 2, picker, func() (booking.ConfirmationNumber, error) {
			return "", boom
		}, now)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 12, f.Available().Len())
	})

	t.Run("zero seats rejected", func(t *testing.T) {
		f := builder.NewFlightBuilder().MustBuildDomain()
		_, err := inventory.Book(f, passenger(t), 0, picker, allocator("CONF0005"), now)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
	})
}

func TestSwapSeat(t *testing.T) {
	setup := func(t *testing.T) (*flight.Flight, *booking.Booking) {
		t.Helper()
		fb := builder.NewFlightBuilder()
		fb.SeatMap = []string{"14A", "14B", "14C", "15A"}
		f := fb.WithAvailable("14B", "15A").MustBuildDomain()
		b := builder.NewBookingBuilder().WithSeats("14A", "14C").MustBuildDomain()
		return f, b
	}

	t.Run("round trip restores both sets", func(t *testing.T) {
		f, b := setup(t)
		origSeats, origAvail := b.Seats(), f.Available()

		mv, err := inventory.SwapSeat(f, b, "14A", "14B", now)
		require.NoError(t, err)
		assert.Equal(t, "14B,14C", b.Seats().String())
		assert.Equal(t, "14A,15A", f.Available().String())
		assert.Equal(t, "14B", mv.Taken.String())
		assert.Equal(t, "14A", mv.Released.String())
		require.NoError(t, inventory.CheckPartition(f, []*booking.Booking{b}))

		_, err = inventory.SwapSeat(f, b, "14B", "14A", now)
		require.NoError(t, err)
		assert.True(t, origSeats.Equal(b.Seats()))
		assert.True(t, origAvail.Equal(f.Available()))
	})

	t.Run("seat not booked", func(t *testing.T) {
		f, b := setup(t)
		_, err := inventory.SwapSeat(f, b, "15A", "14B", now)
		assert.True(t, errs.Is(err, inventory.ErrSeatNotBooked))
		assert.Equal(t, "14A,14C", b.Seats().String())
	})

	t.Run("seat not available", func(t *testing.T) {
		f, b := setup(t)
		_, err := inventory.SwapSeat(f, b, "14A", "14C", now)
		assert.True(t, errs.Is(err, inventory.ErrSeatNotAvailable))
		assert.Equal(t, "14B,15A", f.Available().String())
	})

	t.Run("booking on another flight", func(t *testing.T) {
		f, _ := setup(t)
		other := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.FlightNumber = "FL2000"
		}).MustBuildDomain()
		_, err := inventory.SwapSeat(f, other, "10A", "14B", now)
		assert.ErrorIs(t, err, inventory.ErrFlightMismatch)
	})
}

func TestResize(t *testing.T) {
	setup := func(t *testing.T) (*flight.Flight, *booking.Booking) {
		t.Helper()
		f := builder.NewFlightBuilder().WithAvailable(builder.Seats(11, 12, "ABCD")...).MustBuildDomain()
		b := builder.NewBookingBuilder().WithSeats("10A", "10B", "10C", "10D").MustBuildDomain()
		return f, b
	}

	t.Run("same count is a no-op", func(t *testing.T) {
		f, b := setup(t)
		updated := b.UpdatedAt()

		mv, err := inventory.Resize(f, b, 4, now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, mv.IsNoop())
		assert.Equal(t, updated, b.UpdatedAt())
		assert.Equal(t, 8, f.Available().Len())
	})

	t.Run("shrink releases trailing seats", func(t *testing.T) {
		f, b := setup(t)

		mv, err := inventory.Resize(f, b, 2, now)
		require.NoError(t, err)
		assert.Equal(t, "10A,10B", b.Seats().String())
		assert.Equal(t, "10C,10D", mv.Released.String())
		assert.True(t, f.Available().Contains("10C"))
		assert.NoError(t, inventory.CheckPartition(f, []*booking.Booking{b}))
	})

	t.Run("grow takes leading available seats", func(t *testing.T) {
		f, b := setup(t)

		mv, err := inventory.Resize(f, b, 6, now)
		require.NoError(t, err)
		assert.Equal(t, "11A,11B", mv.Taken.String())
		assert.Equal(t, 6, b.Seats().Len())
		assert.Equal(t, 6, f.Available().Len())
		assert.NoError(t, inventory.CheckPartition(f, []*booking.Booking{b}))
	})

	t.Run("grow beyond availability", func(t *testing.T) {
		f, b := setup(t)

		_, err := inventory.Resize(f, b, 13, now)
		assert.True(t, errs.Is(err, inventory.ErrInsufficientSeats))
		assert.Equal(t, 4, b.Seats().Len())
		assert.Equal(t, 8, f.Available().Len())
	})

	t.Run("zero rejected", func(t *testing.T) {
		f, b := setup(t)

		_, err := inventory.Resize(f, b, 0, now)
		assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
		assert.Equal(t, 4, b.Seats().Len())
	})
}

func TestAmend(t *testing.T) {
	f := builder.NewFlightBuilder().WithAvailable(builder.Seats(11, 12, "ABCD")...).MustBuildDomain()
	b := builder.NewBookingBuilder().WithSeats("10A").MustBuildDomain()

	_, err := inventory.Amend(f, b, booking.ResizeSeats{Count: 2}, now)
	require.NoError(t, err)
	assert.Equal(t, "10A,11A", b.Seats().String())

	_, err = inventory.Amend(f, b, booking.SwapSeat{From: "11A", To: "12D"}, now)
	require.NoError(t, err)
	assert.Equal(t, "10A,12D", b.Seats().String())

	_, err = inventory.Amend(f, b, nil, now)
	assert.True(t, errs.Is(err, errs.ErrInvalidRequest))
}

func TestRelease(t *testing.T) {
	f := builder.NewFlightBuilder().WithAvailable(builder.Seats(11, 12, "ABCD")...).MustBuildDomain()
	b := builder.NewBookingBuilder().WithSeats("10A", "10B", "10C", "10D").MustBuildDomain()

	mv, err := inventory.Release(f, b)
	require.NoError(t, err)
	assert.Equal(t, 4, mv.Released.Len())
	assert.True(t, f.Available().Equal(f.SeatMap()))
	assert.NoError(t, inventory.CheckPartition(f, nil))
}

func TestCheckPartition(t *testing.T) {
	fb := builder.NewFlightBuilder()
	fb.SeatMap = []string{"1A", "1B", "1C"}

	t.Run("seat lost", func(t *testing.T) {
		f := fb.WithAvailable("1A").MustBuildDomain()
		b := builder.NewBookingBuilder().WithSeats("1B").MustBuildDomain()
		assert.True(t, errs.Is(inventory.CheckPartition(f, []*booking.Booking{b}), inventory.ErrPartitionViolated))
	})

	t.Run("seat held twice", func(t *testing.T) {
		f := fb.WithAvailable("1A").MustBuildDomain()
		b1 := builder.NewBookingBuilder().WithSeats("1B", "1C").MustBuildDomain()
		b2 := builder.NewBookingBuilder().WithSeats("1C").MustBuildDomain()
		assert.True(t, errs.Is(inventory.CheckPartition(f, []*booking.Booking{b1, b2}), inventory.ErrPartitionViolated))
	})

	t.Run("exact split", func(t *testing.T) {
		f := fb.WithAvailable("1A").MustBuildDomain()
		b1 := builder.NewBookingBuilder().WithSeats("1B").MustBuildDomain()
		b2 := builder.NewBookingBuilder().WithSeats("1C").MustBuildDomain()
		assert.NoError(t, inventory.CheckPartition(f, []*booking.Booking{b1, b2}))
		assert.Equal(t, "1B,1C", inventory.SeatsOf([]*booking.Booking{b1, b2}).String())
	})
}

func TestDefaultPicker(t *testing.T) {
	avail := seat.NewSet("10A", "10B", "10C")
	p := inventory.NewDefaultPicker(nil)

	one := p.Pick(avail, 1)
	require.Equal(t, 1, one.Len())
	assert.True(t, avail.Contains(one.At(0)))
	assert.Equal(t, "10A,10B", p.Pick(avail, 2).String())
	assert.True(t, p.Pick(avail, 0).IsEmpty())
}
