package inventory

import (
	"math/rand/v2"

	"flight-booking/internal/domain/seat"
)

// SeatPicker chooses n seats out of an available set that holds at least n seats.
type SeatPicker interface {
	Pick(available seat.Set, n int) seat.Set
}

type IntNSource interface {
	IntN(n int) int
}

// GlobalSource draws from the goroutine-safe math/rand/v2 top-level generator.
type GlobalSource struct{}

func (GlobalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultPicker picks a single seat uniformly at random. Larger parties get the
// first n seats in canonical order, which approximates adjacent seating only as
// far as the seat identifiers sort by row; it is not a physical adjacency check.
type DefaultPicker struct {
	rnd IntNSource
}

func NewDefaultPicker(rnd IntNSource) DefaultPicker {
	if rnd == nil {
		rnd = GlobalSource{}
	}
	return DefaultPicker{rnd: rnd}
}

func (p DefaultPicker) Pick(available seat.Set, n int) seat.Set {
	if n <= 0 || available.IsEmpty() {
		return seat.Set{}
	}
	if n == 1 {
		rnd := p.rnd
		if rnd == nil {
			rnd = GlobalSource{}
		}
		return seat.NewSet(available.At(rnd.IntN(available.Len())))
	}
	head, _ := available.SplitAt(n)
	return head
}
