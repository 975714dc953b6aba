//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"flight-booking/internal/infra"
	"flight-booking/internal/pkg/errs"
	"flight-booking/internal/usecase/queries"
	queriesmock "flight-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "not found", nil)
}

func TestFlightQueries_SearchFlights(t *testing.T) {
	ctx := context.Background()
	fl := &queries.FlightView{FlightNumber: "FL1000", FromCity: "Berlin", ToCity: "Paris"}

	t.Run("flight number wins over cities", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFlightReadStore(ctrl)
		store.EXPECT().FindByNumber(gomock.Any(), "FL1000").Return(fl, nil).Times(1)

		got, err := queries.NewFlightQueries(store).SearchFlights(ctx, queries.FlightSearch{
			FromCity:     "Madrid",
			FlightNumber: "FL1000",
		})
		require.NoError(t, err)
		assert.Equal(t, []*queries.FlightView{fl}, got)
	})

	t.Run("unknown flight number yields an empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFlightReadStore(ctrl)
		store.EXPECT().FindByNumber(gomock.Any(), "FL9999").Return(nil, notFound()).Times(1)

		got, err := queries.NewFlightQueries(store).SearchFlights(ctx, queries.FlightSearch{FlightNumber: "FL9999"})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("cities filter by route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFlightReadStore(ctrl)
		store.EXPECT().FindByRoute(gomock.Any(), "Berlin", "").Return([]*queries.FlightView{fl}, nil).Times(1)

		got, err := queries.NewFlightQueries(store).SearchFlights(ctx, queries.FlightSearch{FromCity: " Berlin "})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no filter lists everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFlightReadStore(ctrl)
		store.EXPECT().List(gomock.Any()).Return([]*queries.FlightView{fl}, nil).Times(1)

		got, err := queries.NewFlightQueries(store).SearchFlights(ctx, queries.FlightSearch{})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestFlightQueries_GetFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockFlightReadStore(ctrl)
	store.EXPECT().FindByNumber(gomock.Any(), "FL9999").Return(nil, notFound()).Times(1)
	store.EXPECT().FindByNumber(gomock.Any(), "FL1000").Return(nil, errors.New("connection reset")).Times(1)

	q := queries.NewFlightQueries(store)

	_, err := q.GetFlight(context.Background(), "FL9999")
	assert.True(t, errs.Is(err, queries.ErrFlightNotFound))
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	_, err = q.GetFlight(context.Background(), "FL1000")
	require.Error(t, err)
	assert.False(t, errs.Is(err, errs.ErrNotFound))
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()
	bv := &queries.BookingView{ConfirmationNumber: "CONF0001", FlightNumber: "FL1000", PassengerName: "Jane Doe"}

	newQueries := func(t *testing.T) (*queriesmock.MockBookingReadStore, *queriesmock.MockFlightReadStore, queries.BookingQueries) {
		ctrl := gomock.NewController(t)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		flights := queriesmock.NewMockFlightReadStore(ctrl)
		return bookings, flights, queries.NewBookingQueries(bookings, queries.NewFlightQueries(flights))
	}

	t.Run("confirmation number filter", func(t *testing.T) {
		bookings, _, q := newQueries(t)
		bookings.EXPECT().FindByConfirmation(gomock.Any(), "CONF0001").Return(bv, nil).Times(1)

		got, err := q.ListBookings(ctx, queries.BookingFilter{ConfirmationNumber: "CONF0001", PassengerName: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, []*queries.BookingView{bv}, got)
	})

	t.Run("unknown confirmation number yields an empty list", func(t *testing.T) {
		bookings, _, q := newQueries(t)
		bookings.EXPECT().FindByConfirmation(gomock.Any(), "CONF0404").Return(nil, notFound()).Times(1)

		got, err := q.ListBookings(ctx, queries.BookingFilter{ConfirmationNumber: "CONF0404"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("passenger filter returns every match", func(t *testing.T) {
		bookings, _, q := newQueries(t)
		other := &queries.BookingView{ConfirmationNumber: "CONF0002", PassengerName: "Jane Doe"}
		bookings.EXPECT().FindByPassenger(gomock.Any(), "Jane Doe").Return([]*queries.BookingView{bv, other}, nil).Times(1)

		got, err := q.ListBookings(ctx, queries.BookingFilter{PassengerName: "Jane Doe"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("bookings of a flight", func(t *testing.T) {
		bookings, flights, q := newQueries(t)
		fv := &queries.FlightView{FlightNumber: "FL1000"}
		flights.EXPECT().FindByNumber(gomock.Any(), "FL1000").Return(fv, nil).Times(1)
		bookings.EXPECT().FindByFlight(gomock.Any(), "FL1000").Return([]*queries.BookingView{bv}, nil).Times(1)

		got, err := q.SearchBookingsByFlight(ctx, "FL1000")
		require.NoError(t, err)
		assert.Same(t, fv, got.Flight)
		assert.Len(t, got.Bookings, 1)
	})

	t.Run("bookings of an unknown flight", func(t *testing.T) {
		_, flights, q := newQueries(t)
		flights.EXPECT().FindByNumber(gomock.Any(), "FL9999").Return(nil, notFound()).Times(1)

		_, err := q.SearchBookingsByFlight(ctx, "FL9999")
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
