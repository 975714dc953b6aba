package memstore

import (
	"context"
	"sync"
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"

	"github.com/google/uuid"
)

type flightRecord struct {
	number    flight.Number
	route     flight.Route
	seatMap   seat.Set
	available seat.Set
	version   int64
}

func (r flightRecord) toDomain() *flight.Flight {
	return flight.ReconstructFlight(r.number, r.route, r.seatMap, r.available, r.version)
}

type bookingRecord struct {
	id           uuid.UUID
	confirmation booking.ConfirmationNumber
	flightNumber flight.Number
	passenger    booking.PassengerName
	seats        seat.Set
	createdAt    time.Time
	updatedAt    time.Time
}

func newBookingRecord(b *booking.Booking) bookingRecord {
	return bookingRecord{
		id:           b.ID(),
		confirmation: b.ConfirmationNumber(),
		flightNumber: b.FlightNumber(),
		passenger:    b.PassengerName(),
		seats:        b.Seats(),
		createdAt:    b.CreatedAt(),
		updatedAt:    b.UpdatedAt(),
	}
}

func (r bookingRecord) toDomain() *booking.Booking {
	return booking.ReconstructBooking(r.id, r.confirmation, r.flightNumber, r.passenger, r.seats, r.createdAt, r.updatedAt)
}

// Store keeps flights and bookings in process memory. Records are immutable
// values; a unit of work stages replacements and swaps them in on commit.
type Store struct {
	mu       sync.RWMutex
	flights  map[flight.Number]flightRecord
	bookings map[booking.ConfirmationNumber]bookingRecord

	locksMu sync.Mutex
	locks   map[flight.Number]chan struct{}
}

func NewStore() *Store {
	return &Store{
		flights:  make(map[flight.Number]flightRecord),
		bookings: make(map[booking.ConfirmationNumber]bookingRecord),
		locks:    make(map[flight.Number]chan struct{}),
	}
}

func (s *Store) flightLock(number flight.Number) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[number]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[number] = l
	}
	return l
}

// lockFlight blocks until the flight is free or ctx is done.
func (s *Store) lockFlight(ctx context.Context, number flight.Number) (func(), error) {
	l := s.flightLock(number)
	select {
	case l <- struct{}{}:
		return func() { <-l }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) getFlight(number flight.Number) (flightRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.flights[number]
	return r, ok
}

func (s *Store) getBooking(confirmation booking.ConfirmationNumber) (bookingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.bookings[confirmation]
	return r, ok
}
