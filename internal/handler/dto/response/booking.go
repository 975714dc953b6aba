package response

import (
	"time"

	"flight-booking/internal/usecase/commands"
	"flight-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID `json:"id"`
	ConfirmationNumber string    `json:"confirmation_number"`
	FlightNumber       string    `json:"flight_number"`
	PassengerName      string    `json:"passenger_name"`
	SeatNumbers        []string  `json:"seat_numbers"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	mustCopy(resp, v)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, v := range views {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	resp := &BookingResponse{}
	mustCopy(resp, r)
	return resp
}

type CancelBookingResponse struct {
	ConfirmationNumber string   `json:"confirmation_number"`
	FlightNumber       string   `json:"flight_number"`
	ReleasedSeats      []string `json:"released_seats"`
}

func FromCancelResult(r *commands.CancelResult) *CancelBookingResponse {
	resp := &CancelBookingResponse{}
	mustCopy(resp, r)
	return resp
}

// mustCopy copies same-named fields; it only fails when src and dst shapes are
// not structs, which the callers above rule out.
func mustCopy(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic(err)
	}
}
