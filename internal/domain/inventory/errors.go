package inventory

import (
	"errors"
	"fmt"

	"flight-booking/internal/domain/flight"
	"flight-booking/internal/pkg/errs"
)

var (
	ErrNoSeatsAvailable   = errors.New("no seats are available")
	ErrInsufficientSeats  = errors.New("not enough seats are available")
	ErrSeatNotBooked      = errors.New("seat is not part of the booking")
	ErrSeatNotAvailable   = errors.New("seat is not available")
	ErrInvalidSeatCount   = errors.New("seat count must be at least 1")
	ErrFlightMismatch     = errors.New("booking does not belong to flight")
	ErrPartitionViolated  = errors.New("seat partition violated")
	ErrUnknownAmendAction = errors.New("unknown amend request")
)

func invalid(err error) error {
	return errs.Mark(err, errs.ErrInvalidRequest)
}

func insufficientSeats(number flight.Number, available int) error {
	return errs.Mark(
		fmt.Errorf("only %d seats are available for flight %s", available, number),
		ErrInsufficientSeats,
	)
}

func noSeats(number flight.Number) error {
	return errs.Mark(fmt.Errorf("no seats are available for flight %s", number), ErrNoSeatsAvailable)
}
