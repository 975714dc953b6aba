package commands

import (
	"context"
	"log/slog"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/inventory"
	"flight-booking/internal/infra"
	"flight-booking/internal/pkg/clock"
	"flight-booking/internal/pkg/errs"
	"flight-booking/internal/usecase/shared"
)

// createAttempts bounds retries when a freshly allocated confirmation number
// loses an insert race against a concurrent booking.
const createAttempts = 3

// Raised errors carry both the specific sentinel and its errs category.
var (
	ErrFlightNotFound            = errs.New("flight not found")
	ErrBookingNotFound           = errs.New("booking not found")
	ErrConfirmationPoolExhausted = errs.New("no confirmation numbers left")
	ErrConflict                  = errs.New("booking changed concurrently, retry the request")
)

type CreateBookingRequest struct {
	FlightNumber  string
	PassengerName string
	Seats         int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error)
	AmendBooking(ctx context.Context, confirmation string, req booking.AmendRequest) (*BookingResult, error)
	CancelBooking(ctx context.Context, confirmation string) (*CancelResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	ledger   *ConfirmationLedger
	picker   inventory.SeatPicker
	clock    clock.Clock
	recorder Recorder
	logger   *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	ledger *ConfirmationLedger,
	picker inventory.SeatPicker,
	clk clock.Clock,
	recorder Recorder,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		ledger:   ledger,
		picker:   picker,
		clock:    clk,
		recorder: recorder,
		logger:   logger,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResult, error) {
	number, err := flight.NewNumber(req.FlightNumber)
	if err != nil {
		return nil, uc.fail("create", errs.Mark(err, errs.ErrInvalidRequest))
	}
	passenger, err := booking.NewPassengerName(req.PassengerName)
	if err != nil {
		return nil, uc.fail("create", errs.Mark(err, errs.ErrInvalidRequest))
	}

	var created *booking.Booking
	for attempt := 1; ; attempt++ {
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			f, derr := lockFlight(ctx, tx, number)
			if derr != nil {
				return derr
			}
			allocate := func() (booking.ConfirmationNumber, error) {
				return uc.ledger.Allocate(ctx, tx.Bookings())
			}
			b, derr := inventory.Book(f, passenger, req.Seats, uc.picker, allocate, uc.clock.Now())
			if derr != nil {
				return derr
			}
			if derr = tx.Flights().SaveAvailable(ctx, f); derr != nil {
				return derr
			}
			if derr = tx.Bookings().Create(ctx, b); derr != nil {
				return derr
			}
			created = b
			return nil
		})
		if err == nil || !infra.IsKind(err, infra.KindDuplicateKey) || attempt == createAttempts {
			break
		}
		uc.recorder.RecordConfirmationCollision()
		uc.logger.Warn("confirmation number collided on insert, retrying",
			"flight_number", number.String(),
			"attempt", attempt)
	}
	if err != nil {
		return nil, uc.fail("create", err)
	}

	uc.recorder.RecordOperation("create", OutcomeSuccess)
	uc.recorder.RecordSeatsTaken(created.Seats().Len())
	uc.logger.Info("booking created",
		"confirmation_number", created.ConfirmationNumber().String(),
		"flight_number", number.String(),
		"seats", created.Seats().String())
	return newBookingResult(created), nil
}

func (uc *bookingCommandsImpl) AmendBooking(ctx context.Context, confirmation string, req booking.AmendRequest) (*BookingResult, error) {
	conf, err := booking.NewConfirmationNumber(confirmation)
	if err != nil {
		return nil, uc.fail("amend", errs.Mark(err, errs.ErrInvalidRequest))
	}

	var (
		amended *booking.Booking
		moved   inventory.Movement
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, b, derr := lockBooking(ctx, tx, conf)
		if derr != nil {
			return derr
		}
		moved, derr = inventory.Amend(f, b, req, uc.clock.Now())
		if derr != nil {
			return derr
		}
		amended = b
		if moved.IsNoop() {
			return nil
		}
		if derr = tx.Flights().SaveAvailable(ctx, f); derr != nil {
			return derr
		}
		return tx.Bookings().Update(ctx, b)
	})
	if err != nil {
		return nil, uc.fail("amend", err)
	}

	uc.recorder.RecordOperation("amend", OutcomeSuccess)
	uc.recorder.RecordSeatsTaken(moved.Taken.Len())
	uc.recorder.RecordSeatsReleased(moved.Released.Len())
	uc.logger.Info("booking amended",
		"confirmation_number", conf.String(),
		"flight_number", amended.FlightNumber().String(),
		"taken", moved.Taken.String(),
		"released", moved.Released.String())
	return newBookingResult(amended), nil
}

func (uc *bookingCommandsImpl) CancelBooking(ctx context.Context, confirmation string) (*CancelResult, error) {
	conf, err := booking.NewConfirmationNumber(confirmation)
	if err != nil {
		return nil, uc.fail("cancel", errs.Mark(err, errs.ErrInvalidRequest))
	}

	var result *CancelResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, b, derr := lockBooking(ctx, tx, conf)
		if derr != nil {
			return derr
		}
		moved, derr := inventory.Release(f, b)
		if derr != nil {
			return derr
		}
		if derr = tx.Flights().SaveAvailable(ctx, f); derr != nil {
			return derr
		}
		if derr = tx.Bookings().Delete(ctx, conf); derr != nil {
			return derr
		}
		result = &CancelResult{
			ConfirmationNumber: conf.String(),
			FlightNumber:       f.Number().String(),
			ReleasedSeats:      moved.Released.Slice(),
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail("cancel", err)
	}

	uc.recorder.RecordOperation("cancel", OutcomeSuccess)
	uc.recorder.RecordSeatsReleased(len(result.ReleasedSeats))
	uc.logger.Info("booking canceled",
		"confirmation_number", result.ConfirmationNumber,
		"flight_number", result.FlightNumber)
	return result, nil
}

func (uc *bookingCommandsImpl) fail(operation string, err error) error {
	err = translateRepoErr(err)
	uc.recorder.RecordOperation(operation, Outcome(err))
	return err
}

func lockFlight(ctx context.Context, tx shared.Tx, number flight.Number) (*flight.Flight, error) {
	f, err := tx.Flights().LockByNumber(ctx, number)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, markAs(errs.Wrapf(err, "flight %s", number), ErrFlightNotFound, errs.ErrNotFound)
	}
	return f, err
}

// lockBooking locks the booking's flight and then reads the booking again, so
// the copy the engine mutates cannot be stale.
func lockBooking(ctx context.Context, tx shared.Tx, conf booking.ConfirmationNumber) (*flight.Flight, *booking.Booking, error) {
	b, err := findBooking(ctx, tx, conf)
	if err != nil {
		return nil, nil, err
	}
	f, err := lockFlight(ctx, tx, b.FlightNumber())
	if err != nil {
		return nil, nil, err
	}
	b, err = findBooking(ctx, tx, conf)
	if err != nil {
		return nil, nil, err
	}
	return f, b, nil
}

func findBooking(ctx context.Context, tx shared.Tx, conf booking.ConfirmationNumber) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByConfirmation(ctx, conf)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, markAs(errs.Wrapf(err, "booking %s", conf), ErrBookingNotFound, errs.ErrNotFound)
	}
	return b, err
}

func translateRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindConflict), infra.IsKind(err, infra.KindDuplicateKey):
		return markAs(err, ErrConflict, errs.ErrConflict)
	default:
		return err
	}
}

func markAs(err, sentinel, category error) error {
	return errs.Mark(errs.Mark(err, sentinel), category)
}
