package flight

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"flight-booking/internal/domain/seat"
)

var (
	ErrInvalidNumber      = errors.New("flight number must match FL followed by 4 digits")
	ErrEmptyCity          = errors.New("city cannot be empty")
	ErrSameCity           = errors.New("departure and arrival city must differ")
	ErrInvalidSchedule    = errors.New("arrival must be after departure")
	ErrEmptySeatMap       = errors.New("seat map cannot be empty")
	ErrSeatOutsideSeatMap = errors.New("available seat is not part of the seat map")
)

var numberPattern = regexp.MustCompile(`^FL[0-9]{4}$`)

type Number string

func NewNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if !numberPattern.MatchString(s) {
		return "", ErrInvalidNumber
	}
	return Number(s), nil
}

func IsValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}

func (n Number) String() string { return string(n) }

type Route struct {
	FromCity      string
	ToCity        string
	DepartingTime time.Time
	ArrivalTime   time.Time
}

// Duration is the scheduled flight time in hours.
func (r Route) Duration() float64 {
	return r.ArrivalTime.Sub(r.DepartingTime).Hours()
}

// Flight holds immutable route metadata plus the mutable set of unassigned seats.
// The seat map is the full partition universe for the flight.
type Flight struct {
	number    Number
	route     Route
	seatMap   seat.Set
	available seat.Set
	version   int64
}

func NewFlight(number Number, route Route, seatMap seat.Set) (*Flight, error) {
	if strings.TrimSpace(route.FromCity) == "" || strings.TrimSpace(route.ToCity) == "" {
		return nil, ErrEmptyCity
	}
	if route.FromCity == route.ToCity {
		return nil, ErrSameCity
	}
	if !route.ArrivalTime.After(route.DepartingTime) {
		return nil, ErrInvalidSchedule
	}
	if seatMap.IsEmpty() {
		return nil, ErrEmptySeatMap
	}

	return &Flight{
		number:    number,
		route:     route,
		seatMap:   seatMap,
		available: seatMap,
	}, nil
}

func ReconstructFlight(number Number, route Route, seatMap, available seat.Set, version int64) *Flight {
	return &Flight{
		number:    number,
		route:     route,
		seatMap:   seatMap,
		available: available,
		version:   version,
	}
}

// ReplaceAvailable swaps in a new available-seat set. The caller guarantees the
// flight/booking partition still holds; only membership in the seat map is checked.
func (f *Flight) ReplaceAvailable(available seat.Set) error {
	if !available.Difference(f.seatMap).IsEmpty() {
		return ErrSeatOutsideSeatMap
	}
	f.available = available
	return nil
}

func (f *Flight) Number() Number      { return f.number }
func (f *Flight) Route() Route        { return f.route }
func (f *Flight) SeatMap() seat.Set   { return f.seatMap }
func (f *Flight) Available() seat.Set { return f.available }
func (f *Flight) Version() int64      { return f.version }
