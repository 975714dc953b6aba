package inventory

import (
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
	"flight-booking/internal/pkg/errs"
)

// Movement reports which seats left the flight's available set (Taken) and
// which went back to it (Released) during a single operation.
type Movement struct {
	Taken    seat.Set
	Released seat.Set
}

func (m Movement) IsNoop() bool { return m.Taken.IsEmpty() && m.Released.IsEmpty() }

// ConfirmationAllocator hands out a confirmation number not held by any live booking.
type ConfirmationAllocator func() (booking.ConfirmationNumber, error)

// Every operation below validates before it mutates: on error neither the
// flight nor the booking has been touched.

func Book(
	f *flight.Flight,
	passenger booking.PassengerName,
	count int,
	picker SeatPicker,
	allocate ConfirmationAllocator,
	now time.Time,
) (*booking.Booking, error) {
	if count < 1 {
		return nil, invalid(ErrInvalidSeatCount)
	}
	available := f.Available()
	if available.IsEmpty() {
		return nil, noSeats(f.Number())
	}
	if count > available.Len() {
		return nil, insufficientSeats(f.Number(), available.Len())
	}

	picked := picker.Pick(available, count)
	if picked.Len() != count || !picked.Difference(available).IsEmpty() {
		return nil, errs.Newf("seat picker returned an invalid selection of %d seats", picked.Len())
	}

	confirmation, err := allocate()
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(confirmation, f.Number(), passenger, picked, now)
	if err != nil {
		return nil, err
	}
	if err := f.ReplaceAvailable(available.Difference(picked)); err != nil {
		return nil, err
	}
	return b, nil
}

func SwapSeat(f *flight.Flight, b *booking.Booking, from, to string, now time.Time) (Movement, error) {
	if b.FlightNumber() != f.Number() {
		return Movement{}, ErrFlightMismatch
	}
	if !b.Seats().Contains(from) {
		return Movement{}, errs.Mark(errs.Newf("seat %s is not booked on %s", from, b.ConfirmationNumber()), ErrSeatNotBooked)
	}
	if !f.Available().Contains(to) {
		return Movement{}, errs.Mark(errs.Newf("seat %s is not available on flight %s", to, f.Number()), ErrSeatNotAvailable)
	}

	newSeats := b.Seats().Remove(from).Add(to)
	newAvailable := f.Available().Remove(to).Add(from)
	if err := commit(f, b, newAvailable, newSeats, now); err != nil {
		return Movement{}, err
	}
	return Movement{Taken: seat.NewSet(to), Released: seat.NewSet(from)}, nil
}

// Resize grows or shrinks the booking to n seats. Shrinking keeps the first n
// seats in canonical order; growing takes the first available seats.
func Resize(f *flight.Flight, b *booking.Booking, n int, now time.Time) (Movement, error) {
	if b.FlightNumber() != f.Number() {
		return Movement{}, ErrFlightMismatch
	}
	if n < 1 {
		return Movement{}, invalid(ErrInvalidSeatCount)
	}

	current := b.Seats()
	switch {
	case n == current.Len():
		return Movement{}, nil
	case n < current.Len():
		keep, release := current.SplitAt(n)
		if err := commit(f, b, f.Available().Union(release), keep, now); err != nil {
			return Movement{}, err
		}
		return Movement{Released: release}, nil
	default:
		extra := n - current.Len()
		available := f.Available()
		if extra > available.Len() {
			return Movement{}, insufficientSeats(f.Number(), available.Len())
		}
		take, rest := available.SplitAt(extra)
		if err := commit(f, b, rest, current.Union(take), now); err != nil {
			return Movement{}, err
		}
		return Movement{Taken: take}, nil
	}
}

func Amend(f *flight.Flight, b *booking.Booking, req booking.AmendRequest, now time.Time) (Movement, error) {
	switch r := req.(type) {
	case booking.SwapSeat:
		return SwapSeat(f, b, r.From, r.To, now)
	case booking.ResizeSeats:
		return Resize(f, b, r.Count, now)
	default:
		return Movement{}, invalid(ErrUnknownAmendAction)
	}
}

// Release hands every seat of a booking back to the flight. The caller deletes the booking.
func Release(f *flight.Flight, b *booking.Booking) (Movement, error) {
	if b.FlightNumber() != f.Number() {
		return Movement{}, ErrFlightMismatch
	}
	if err := f.ReplaceAvailable(f.Available().Union(b.Seats())); err != nil {
		return Movement{}, err
	}
	return Movement{Released: b.Seats()}, nil
}

func commit(f *flight.Flight, b *booking.Booking, available, seats seat.Set, now time.Time) error {
	if seats.IsEmpty() {
		return booking.ErrEmptySeats
	}
	if err := f.ReplaceAvailable(available); err != nil {
		return err
	}
	return b.ReplaceSeats(seats, now)
}
