package booking

import (
	"errors"
	"strings"

	"flight-booking/internal/domain/seat"
	"flight-booking/internal/pkg/errs"
)

var (
	ErrAmendModesConflict = errors.New("provide either no_of_seats or both seat_number_from and seat_number_to, but not both")
	ErrIncompleteSwap     = errors.New("both seat_number_from and seat_number_to must be provided together")
	ErrNothingToAmend     = errors.New("either no_of_seats or both seat_number_from and seat_number_to must be provided")
	ErrInvalidSeatCount   = errors.New("seat count must be at least 1; cancel the booking to release every seat")
)

// AmendRequest is one of SwapSeat or ResizeSeats.
type AmendRequest interface {
	amendRequest()
}

type SwapSeat struct {
	From string
	To   string
}

type ResizeSeats struct {
	Count int
}

func (SwapSeat) amendRequest()    {}
func (ResizeSeats) amendRequest() {}

// ParseAmendRequest turns the optional amend parameters into exactly one mode.
// Every error it returns is also marked errs.ErrInvalidRequest.
func ParseAmendRequest(count *int, from, to *string) (AmendRequest, error) {
	req, err := parseAmendRequest(count, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRequest)
	}
	return req, nil
}

func parseAmendRequest(count *int, from, to *string) (AmendRequest, error) {
	fromSet := from != nil && strings.TrimSpace(*from) != ""
	toSet := to != nil && strings.TrimSpace(*to) != ""

	switch {
	case count != nil && (fromSet || toSet):
		return nil, ErrAmendModesConflict
	case fromSet != toSet:
		return nil, ErrIncompleteSwap
	case fromSet:
		f, t := strings.TrimSpace(*from), strings.TrimSpace(*to)
		if err := seat.ValidateID(f); err != nil {
			return nil, err
		}
		if err := seat.ValidateID(t); err != nil {
			return nil, err
		}
		return SwapSeat{From: f, To: t}, nil
	case count != nil:
		if *count < 1 {
			return nil, ErrInvalidSeatCount
		}
		return ResizeSeats{Count: *count}, nil
	default:
		return nil, ErrNothingToAmend
	}
}
