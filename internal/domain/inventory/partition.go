package inventory

import (
	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
	"flight-booking/internal/pkg/errs"
)

// CheckPartition verifies that the flight's available seats and the seats of
// every booking on it split the seat map exactly, with no seat held twice.
func CheckPartition(f *flight.Flight, bookings []*booking.Booking) error {
	held := f.Available()
	total := held.Len()

	for _, b := range bookings {
		if b.FlightNumber() != f.Number() {
			return errs.Mark(errs.Newf("booking %s belongs to %s", b.ConfirmationNumber(), b.FlightNumber()), ErrFlightMismatch)
		}
		if overlap := held.Intersect(b.Seats()); !overlap.IsEmpty() {
			return errs.Mark(errs.Newf("seats %s held twice on flight %s", overlap, f.Number()), ErrPartitionViolated)
		}
		held = held.Union(b.Seats())
		total += b.Seats().Len()
	}

	if held.Len() != total || !held.Equal(f.SeatMap()) {
		missing := f.SeatMap().Difference(held)
		extra := held.Difference(f.SeatMap())
		return errs.Mark(
			errs.Newf("flight %s seat map mismatch: missing [%s] extra [%s]", f.Number(), missing, extra),
			ErrPartitionViolated,
		)
	}
	return nil
}

// SeatsOf is the union of every booking's seats.
func SeatsOf(bookings []*booking.Booking) seat.Set {
	var out seat.Set
	for _, b := range bookings {
		out = out.Union(b.Seats())
	}
	return out
}
