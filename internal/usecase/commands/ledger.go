package commands

import (
	"context"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/errs"
	"flight-booking/internal/usecase/shared"
)

// ConfirmationLedger hands out CONF#### numbers. It tries a bounded number of
// random suffixes first and then scans the whole pool from a random offset,
// so it only fails once every suffix is held by a live booking.
type ConfirmationLedger struct {
	attempts int
	rnd      inventory.IntNSource
	recorder Recorder
}

func NewConfirmationLedger(cfg config.Config, recorder Recorder) *ConfirmationLedger {
	return NewConfirmationLedgerWithSource(cfg.Booking.ConfirmationAttempts, inventory.GlobalSource{}, recorder)
}

func NewConfirmationLedgerWithSource(attempts int, rnd inventory.IntNSource, recorder Recorder) *ConfirmationLedger {
	return &ConfirmationLedger{
		attempts: max(attempts, 1),
		rnd:      rnd,
		recorder: recorder,
	}
}

func (l *ConfirmationLedger) Allocate(ctx context.Context, bookings shared.BookingRepository) (booking.ConfirmationNumber, error) {
	for range l.attempts {
		candidate := booking.ConfirmationFromSuffix(l.rnd.IntN(booking.ConfirmationPoolSize))
		exists, err := bookings.ConfirmationExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		l.recorder.RecordConfirmationCollision()
	}

	live, err := bookings.ListConfirmations(ctx)
	if err != nil {
		return "", err
	}
	taken := make(map[booking.ConfirmationNumber]struct{}, len(live))
	for _, c := range live {
		taken[c] = struct{}{}
	}

	start := l.rnd.IntN(booking.ConfirmationPoolSize)
	for i := range booking.ConfirmationPoolSize {
		candidate := booking.ConfirmationFromSuffix((start + i) % booking.ConfirmationPoolSize)
		if _, ok := taken[candidate]; !ok {
			return candidate, nil
		}
	}
	return "", errs.Wrapf(ErrConfirmationPoolExhausted, "%d bookings hold every suffix", len(taken))
}
