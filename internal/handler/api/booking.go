package api

import (
	"net/http"

	reqdto "flight-booking/internal/handler/dto/request"
	resdto "flight-booking/internal/handler/dto/response"
	"flight-booking/internal/handler/httperr"
	"flight-booking/internal/usecase/commands"
	"flight-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	reqdto.RegisterValidators()
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description List bookings, filtered by confirmation number or passenger name
// @Tags bookings
// @Produce json
// @Param confirmation_number query string false "Confirmation number" example(CONF1234)
// @Param passenger_name query string false "Passenger name" example(Jon Doe)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var req reqdto.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	views, err := h.q.ListBookings(c.Request.Context(), req.ToQuery())
	if err != nil {
		abortWithUsecaseError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Book a flight
// @Description Reserve seats on a flight and issue a confirmation number
// @Tags bookings
// @Produce json
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param flight_number query string true "Flight number" example(FL1234)
// @Param passenger_name query string true "Passenger name" example(Jon Doe)
// @Param no_of_seats query int true "Number of seats" minimum(1) maximum(10)
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err, "Flight "+req.FlightNumber+" not found")
		return
	}
	c.Header("Location", "/api/bookings?confirmation_number="+result.ConfirmationNumber)
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Amend a booking
// @Description Change the seat count, or swap one booked seat for an available one
// @Tags bookings
// @Produce json
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param confirmation_number path string true "Confirmation number" example(CONF1234)
// @Param no_of_seats query int false "New number of seats" minimum(1) maximum(10)
// @Param seat_number_from query string false "Seat to give up" example(12A)
// @Param seat_number_to query string false "Seat to take" example(12B)
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{confirmation_number} [put]
func (h *BookingHandler) Amend(c *gin.Context) {
	var uri reqdto.ConfirmationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid confirmation number", err.Error())
		return
	}
	var req reqdto.AmendBookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	amend, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	result, err := h.cmds.AmendBooking(c.Request.Context(), uri.ConfirmationNumber, amend)
	if err != nil {
		abortWithUsecaseError(c, err, "Booking "+uri.ConfirmationNumber+" not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Cancel a booking
// @Description Delete a booking and return its seats to the flight
// @Tags bookings
// @Produce json
// @Param Idempotency-Key header string false "Replays the first response for a repeated key"
// @Param confirmation_number path string true "Confirmation number" example(CONF1234)
// @Success 200 {object} resdto.CancelBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{confirmation_number} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var uri reqdto.ConfirmationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid confirmation number", err.Error())
		return
	}
	result, err := h.cmds.CancelBooking(c.Request.Context(), uri.ConfirmationNumber)
	if err != nil {
		abortWithUsecaseError(c, err, "Booking "+uri.ConfirmationNumber+" not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}
