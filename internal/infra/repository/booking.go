package repository

import (
	"context"
	"time"

	"flight-booking/internal/domain/booking"
	"flight-booking/internal/domain/flight"
	"flight-booking/internal/domain/seat"
	"flight-booking/internal/infra"
	"flight-booking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	findBookingSQL = `
SELECT id, confirmation_number, flight_number, passenger_name, seat_numbers, created_at, updated_at
FROM bookings
WHERE confirmation_number = $1`

	confirmationExistsSQL = `SELECT EXISTS (SELECT 1 FROM bookings WHERE confirmation_number = $1)`

	listConfirmationsSQL = `SELECT confirmation_number FROM bookings`

	createBookingSQL = `
INSERT INTO bookings (id, confirmation_number, flight_number, passenger_name, seat_numbers, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateBookingSQL = `
UPDATE bookings
SET seat_numbers = $2, updated_at = $3
WHERE confirmation_number = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE confirmation_number = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) FindByConfirmation(ctx context.Context, confirmation booking.ConfirmationNumber) (*booking.Booking, error) {
	var (
		id                                          uuid.UUID
		confirmationNumber, flightNumber, passenger string
		seats                                       []string
		createdAt, updatedAt                        time.Time
	)
	err := r.db.QueryRow(ctx, findBookingSQL, confirmation.String()).Scan(
		&id, &confirmationNumber, &flightNumber, &passenger, &seats, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, classify("failed to find booking", err)
	}

	return booking.ReconstructBooking(
		id,
		booking.ConfirmationNumber(confirmationNumber),
		flight.Number(flightNumber),
		booking.PassengerName(passenger),
		seat.NewSet(seats...),
		createdAt,
		updatedAt,
	), nil
}

func (r *BookingRepository) ConfirmationExists(ctx context.Context, confirmation booking.ConfirmationNumber) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, confirmationExistsSQL, confirmation.String()).Scan(&exists); err != nil {
		return false, classify("failed to check confirmation number", err)
	}
	return exists, nil
}

func (r *BookingRepository) ListConfirmations(ctx context.Context) ([]booking.ConfirmationNumber, error) {
	rows, err := r.db.Query(ctx, listConfirmationsSQL)
	if err != nil {
		return nil, classify("failed to list confirmation numbers", err)
	}
	defer rows.Close()

	var out []booking.ConfirmationNumber
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, classify("failed to scan confirmation number", err)
		}
		out = append(out, booking.ConfirmationNumber(c))
	}
	if err := rows.Err(); err != nil {
		return nil, classify("failed to list confirmation numbers", err)
	}
	return out, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, createBookingSQL,
		b.ID(),
		b.ConfirmationNumber().String(),
		b.FlightNumber().String(),
		b.PassengerName().String(),
		b.Seats().Slice(),
		b.CreatedAt(),
		b.UpdatedAt(),
	)
	if err != nil {
		return classify("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, updateBookingSQL, b.ConfirmationNumber().String(), b.Seats().Slice(), b.UpdatedAt())
	if err != nil {
		return classify("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking disappeared before update", nil)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, confirmation booking.ConfirmationNumber) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, confirmation.String())
	if err != nil {
		return classify("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking disappeared before delete", nil)
	}
	return nil
}
