package commands

import (
	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/pkg/errs"
)

const OutcomeSuccess = "success"

// Outcome buckets an engine error into a low-cardinality metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errs.Is(err, errs.ErrNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrInvalidRequest):
		return "invalid_request"
	case errs.Is(err, inventory.ErrNoSeatsAvailable):
		return "no_seats"
	case errs.Is(err, inventory.ErrInsufficientSeats):
		return "insufficient_seats"
	case errs.Is(err, inventory.ErrSeatNotBooked):
		return "seat_not_booked"
	case errs.Is(err, inventory.ErrSeatNotAvailable):
		return "seat_not_available"
	case errs.Is(err, ErrConfirmationPoolExhausted):
		return "pool_exhausted"
	case errs.Is(err, errs.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
