package memstore

import (
	"context"
	"maps"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/infra"
	"flight-booking/internal/usecase/shared"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within holds every flight lock taken by fn until fn returns and applies the
// staged writes only when fn succeeds.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{
		store:          u.store,
		held:           make(map[flight.Number]func()),
		flightWrites:   make(map[flight.Number]flightRecord),
		flightBase:     make(map[flight.Number]int64),
		bookingWrites:  make(map[booking.ConfirmationNumber]bookingRecord),
		bookingDeletes: make(map[booking.ConfirmationNumber]struct{}),
	}
	defer tx.release()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

type memTx struct {
	store *Store
	held  map[flight.Number]func()

	flightWrites   map[flight.Number]flightRecord
	flightBase     map[flight.Number]int64
	flightCreates  []flightRecord
	bookingWrites  map[booking.ConfirmationNumber]bookingRecord
	bookingCreates []booking.ConfirmationNumber
	bookingDeletes map[booking.ConfirmationNumber]struct{}
}

func (t *memTx) Flights() shared.FlightRepository   { return flightRepo{tx: t} }
func (t *memTx) Bookings() shared.BookingRepository { return bookingRepo{tx: t} }

func (t *memTx) release() {
	for _, unlock := range t.held {
		unlock()
	}
	clear(t.held)
}

func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for number, base := range t.flightBase {
		if cur, ok := s.flights[number]; !ok || cur.version != base {
			return infra.WrapRepoErr(infra.KindConflict, "flight version changed since it was read", nil)
		}
	}
	for _, r := range t.flightCreates {
		if _, ok := s.flights[r.number]; ok {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "flight "+r.number.String()+" already exists", nil)
		}
	}
	for _, c := range t.bookingCreates {
		if _, ok := s.bookings[c]; ok {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "confirmation number "+c.String()+" already exists", nil)
		}
	}

	for _, r := range t.flightCreates {
		s.flights[r.number] = r
	}
	maps.Copy(s.flights, t.flightWrites)
	maps.Copy(s.bookings, t.bookingWrites)
	for c := range t.bookingDeletes {
		delete(s.bookings, c)
	}
	return nil
}

func (t *memTx) booking(confirmation booking.ConfirmationNumber) (bookingRecord, bool) {
	if _, deleted := t.bookingDeletes[confirmation]; deleted {
		return bookingRecord{}, false
	}
	if r, ok := t.bookingWrites[confirmation]; ok {
		return r, true
	}
	return t.store.getBooking(confirmation)
}

type flightRepo struct {
	tx *memTx
}

func (r flightRepo) LockByNumber(ctx context.Context, number flight.Number) (*flight.Flight, error) {
	t := r.tx
	if _, held := t.held[number]; !held {
		unlock, err := t.store.lockFlight(ctx, number)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to lock flight", err)
		}
		t.held[number] = unlock
	}

	if rec, ok := t.flightWrites[number]; ok {
		return rec.toDomain(), nil
	}
	rec, ok := t.store.getFlight(number)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "flight "+number.String()+" not found", nil)
	}
	return rec.toDomain(), nil
}

func (r flightRepo) SaveAvailable(_ context.Context, f *flight.Flight) error {
	t := r.tx
	if _, held := t.held[f.Number()]; !held {
		return infra.WrapRepoErr(infra.KindConflict, "flight "+f.Number().String()+" saved without a lock", nil)
	}
	base, ok := t.flightBase[f.Number()]
	if !ok {
		cur, exists := t.store.getFlight(f.Number())
		if !exists {
			return infra.WrapRepoErr(infra.KindNotFound, "flight "+f.Number().String()+" not found", nil)
		}
		base = cur.version
		t.flightBase[f.Number()] = base
	}

	expected := base
	if staged, ok := t.flightWrites[f.Number()]; ok {
		expected = staged.version
	}
	if f.Version() != expected {
		return infra.WrapRepoErr(infra.KindConflict, "flight version changed since it was read", nil)
	}

	t.flightWrites[f.Number()] = flightRecord{
		number:    f.Number(),
		route:     f.Route(),
		seatMap:   f.SeatMap(),
		available: f.Available(),
		version:   f.Version() + 1,
	}
	return nil
}

func (r flightRepo) Create(_ context.Context, f *flight.Flight) error {
	if _, exists := r.tx.store.getFlight(f.Number()); exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "flight "+f.Number().String()+" already exists", nil)
	}
	r.tx.flightCreates = append(r.tx.flightCreates, flightRecord{
		number:    f.Number(),
		route:     f.Route(),
		seatMap:   f.SeatMap(),
		available: f.Available(),
	})
	return nil
}

func (r flightRepo) Count(_ context.Context) (int, error) {
	r.tx.store.mu.RLock()
	defer r.tx.store.mu.RUnlock()
	return len(r.tx.store.flights) + len(r.tx.flightCreates), nil
}

type bookingRepo struct {
	tx *memTx
}

func (r bookingRepo) FindByConfirmation(_ context.Context, confirmation booking.ConfirmationNumber) (*booking.Booking, error) {
	rec, ok := r.tx.booking(confirmation)
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "booking "+confirmation.String()+" not found", nil)
	}
	return rec.toDomain(), nil
}

func (r bookingRepo) ConfirmationExists(_ context.Context, confirmation booking.ConfirmationNumber) (bool, error) {
	_, ok := r.tx.booking(confirmation)
	return ok, nil
}

func (r bookingRepo) ListConfirmations(_ context.Context) ([]booking.ConfirmationNumber, error) {
	s := r.tx.store
	s.mu.RLock()
	out := make([]booking.ConfirmationNumber, 0, len(s.bookings)+len(r.tx.bookingCreates))
	for c := range s.bookings {
		if _, deleted := r.tx.bookingDeletes[c]; !deleted {
			out = append(out, c)
		}
	}
	s.mu.RUnlock()
	return append(out, r.tx.bookingCreates...), nil
}

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, exists := r.tx.booking(b.ConfirmationNumber()); exists {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "confirmation number "+b.ConfirmationNumber().String()+" already exists", nil)
	}
	if _, exists := r.tx.store.getFlight(b.FlightNumber()); !exists {
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, "flight "+b.FlightNumber().String()+" not found", nil)
	}
	delete(r.tx.bookingDeletes, b.ConfirmationNumber())
	r.tx.bookingWrites[b.ConfirmationNumber()] = newBookingRecord(b)
	r.tx.bookingCreates = append(r.tx.bookingCreates, b.ConfirmationNumber())
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, exists := r.tx.booking(b.ConfirmationNumber()); !exists {
		return infra.WrapRepoErr(infra.KindNotFound, "booking disappeared before update", nil)
	}
	r.tx.bookingWrites[b.ConfirmationNumber()] = newBookingRecord(b)
	return nil
}

func (r bookingRepo) Delete(_ context.Context, confirmation booking.ConfirmationNumber) error {
	if _, exists := r.tx.booking(confirmation); !exists {
		return infra.WrapRepoErr(infra.KindNotFound, "booking disappeared before delete", nil)
	}
	delete(r.tx.bookingWrites, confirmation)
	r.tx.bookingDeletes[confirmation] = struct{}{}
	return nil
}
